package repository

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	DB *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

func (r *RecipeRepository) ListByMenu(menuID uint) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	err := r.DB.Where("menu_id = ?", menuID).Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) List() ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	err := r.DB.Order("recipe_id").Find(&recipes).Error
	return recipes, err
}

func (r *RecipeRepository) Create(rec *entity.Recipe) error {
	return r.DB.Create(rec).Error
}

func (r *RecipeRepository) Update(rec *entity.Recipe) error {
	return r.DB.Save(rec).Error
}

func (r *RecipeRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Recipe{}, id)
	return res.RowsAffected, res.Error
}
