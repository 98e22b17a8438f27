package services

import (
	"errors"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeService struct {
	Repo *repository.EmployeeRepository
}

func NewEmployeeService(repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{Repo: repo}
}

type EmployeeIn struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=cashier manager"`
	Salary   int64  `json:"salary" binding:"min=0"`
	Password string `json:"password"`
}

func (s *EmployeeService) List(search string) ([]entity.Employee, error) {
	return s.Repo.List(search)
}

func (s *EmployeeService) Create(in *EmployeeIn) (*entity.Employee, error) {
	e := entity.Employee{Name: in.Name, Role: in.Role, Salary: in.Salary}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.Password = string(hash)
	}
	if err := s.Repo.Create(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EmployeeService) Update(id uint, in *EmployeeIn) (*entity.Employee, error) {
	e, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, errors.New("employee not found")
	}
	e.Name = in.Name
	e.Role = in.Role
	e.Salary = in.Salary
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.Password = string(hash)
	}
	if err := s.Repo.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("employee not found")
	}
	return nil
}
