package services

import (
	"errors"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuIn struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=Entree Side Appetizer Drink"`
	ExtraCost int64  `json:"extra_cost" binding:"min=0"`
	Calories  int    `json:"calories" binding:"min=0"`
}

func (s *MenuService) List(search string) ([]entity.Menu, error) {
	return s.Repo.List(search)
}

func (s *MenuService) Create(in *MenuIn) (*entity.Menu, error) {
	m := entity.Menu{Name: in.Name, Type: in.Type, ExtraCost: in.ExtraCost, Calories: in.Calories}
	if err := s.Repo.Create(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MenuService) Update(id uint, in *MenuIn) (*entity.Menu, error) {
	m, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, errors.New("menu item not found")
	}
	m.Name = in.Name
	m.Type = in.Type
	m.ExtraCost = in.ExtraCost
	m.Calories = in.Calories
	if err := s.Repo.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("menu item not found")
	}
	return nil
}
