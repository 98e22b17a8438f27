package repository

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"gorm.io/gorm"
)

type ContainerRepository struct {
	DB *gorm.DB
}

func NewContainerRepository(db *gorm.DB) *ContainerRepository {
	return &ContainerRepository{DB: db}
}

func (r *ContainerRepository) List(search string) ([]entity.Container, error) {
	var containers []entity.Container
	q := r.DB.Order("container_id")
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	err := q.Find(&containers).Error
	return containers, err
}

func (r *ContainerRepository) FindByID(id uint) (*entity.Container, error) {
	var c entity.Container
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContainerRepository) FindByName(name string) (*entity.Container, error) {
	var c entity.Container
	if err := r.DB.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContainerRepository) Create(c *entity.Container) error {
	return r.DB.Create(c).Error
}

func (r *ContainerRepository) Update(c *entity.Container) error {
	return r.DB.Save(c).Error
}

func (r *ContainerRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Container{}, id)
	return res.RowsAffected, res.Error
}
