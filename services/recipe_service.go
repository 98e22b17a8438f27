package services

import (
	"errors"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
)

type RecipeService struct {
	Repo     *repository.RecipeRepository
	MenuRepo *repository.MenuRepository
	InvRepo  *repository.InventoryRepository
}

func NewRecipeService(repo *repository.RecipeRepository, menuRepo *repository.MenuRepository, invRepo *repository.InventoryRepository) *RecipeService {
	return &RecipeService{Repo: repo, MenuRepo: menuRepo, InvRepo: invRepo}
}

type RecipeIn struct {
	MenuID      uint    `json:"menu_id" binding:"required"`
	InventoryID uint    `json:"inventory_id" binding:"required"`
	Qty         float64 `json:"qty" binding:"gt=0"`
}

func (s *RecipeService) List(menuID uint) ([]entity.Recipe, error) {
	if menuID != 0 {
		return s.Repo.ListByMenu(menuID)
	}
	return s.Repo.List()
}

func (s *RecipeService) Create(in *RecipeIn) (*entity.Recipe, error) {
	if _, err := s.MenuRepo.FindByID(in.MenuID); err != nil {
		return nil, errors.New("menu item not found")
	}
	if _, err := s.InvRepo.FindByID(in.InventoryID); err != nil {
		return nil, errors.New("inventory item not found")
	}
	rec := entity.Recipe{MenuID: in.MenuID, InventoryID: in.InventoryID, Qty: in.Qty}
	if err := s.Repo.Create(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RecipeService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("recipe not found")
	}
	return nil
}
