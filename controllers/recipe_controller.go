package controllers

import (
	"strconv"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/pkg/resp"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/services"
	"github.com/gin-gonic/gin"
)

type RecipeController struct{ Svc *services.RecipeService }

func NewRecipeController(s *services.RecipeService) *RecipeController {
	return &RecipeController{Svc: s}
}

// GET /api/recipes?menu_id=
func (h *RecipeController) List(c *gin.Context) {
	var menuID uint
	if v := c.Query("menu_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid menu_id")
			return
		}
		menuID = uint(id)
	}
	recipes, err := h.Svc.List(menuID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, recipes)
}

// POST /api/recipes
func (h *RecipeController) Create(c *gin.Context) {
	var req services.RecipeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rec, err := h.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, rec)
}

// DELETE /api/recipes/:id
func (h *RecipeController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		if err.Error() == "recipe not found" {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Recipe deleted successfully"})
}
