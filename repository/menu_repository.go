package repository

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// List returns the whole menu, optionally filtered by a name search.
func (r *MenuRepository) List(search string) ([]entity.Menu, error) {
	var menu []entity.Menu
	q := r.DB.Order("menu_id")
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	err := q.Find(&menu).Error
	return menu, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.Menu) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Menu{}, id)
	return res.RowsAffected, res.Error
}
