package repository

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) List(search string) ([]entity.Employee, error) {
	var employees []entity.Employee
	q := r.DB.Order("employee_id")
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	err := q.Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) FindByID(id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) FindByName(name string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.DB.Where("name = ?", name).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(e *entity.Employee) error {
	return r.DB.Create(e).Error
}

func (r *EmployeeRepository) Update(e *entity.Employee) error {
	return r.DB.Save(e).Error
}

func (r *EmployeeRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Employee{}, id)
	return res.RowsAffected, res.Error
}
