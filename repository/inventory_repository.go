package repository

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) List(search string) ([]entity.Inventory, error) {
	var items []entity.Inventory
	q := r.DB.Order("inventory_id")
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *InventoryRepository) FindByID(id uint) (*entity.Inventory, error) {
	var it entity.Inventory
	if err := r.DB.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *InventoryRepository) Create(it *entity.Inventory) error {
	return r.DB.Create(it).Error
}

func (r *InventoryRepository) Update(it *entity.Inventory) error {
	return r.DB.Save(it).Error
}

func (r *InventoryRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Inventory{}, id)
	return res.RowsAffected, res.Error
}
