package services

import (
	"errors"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
)

type InventoryService struct {
	Repo *repository.InventoryRepository
}

func NewInventoryService(repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{Repo: repo}
}

type InventoryIn struct {
	Name   string `json:"name" binding:"required"`
	Cost   int64  `json:"cost" binding:"min=0"`
	MaxQty int    `json:"max_qty" binding:"min=1"`
	Qty    int    `json:"qty" binding:"min=0"`
}

func (s *InventoryService) List(search string) ([]entity.Inventory, error) {
	return s.Repo.List(search)
}

func (s *InventoryService) Create(in *InventoryIn) (*entity.Inventory, error) {
	if in.Qty > in.MaxQty {
		return nil, errors.New("qty exceeds max_qty")
	}
	it := entity.Inventory{Name: in.Name, Cost: in.Cost, MaxQty: in.MaxQty, Qty: in.Qty}
	if err := s.Repo.Create(&it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *InventoryService) Update(id uint, in *InventoryIn) (*entity.Inventory, error) {
	it, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, errors.New("inventory item not found")
	}
	if in.Qty > in.MaxQty {
		return nil, errors.New("qty exceeds max_qty")
	}
	it.Name = in.Name
	it.Cost = in.Cost
	it.MaxQty = in.MaxQty
	it.Qty = in.Qty
	if err := s.Repo.Update(it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *InventoryService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("inventory item not found")
	}
	return nil
}
