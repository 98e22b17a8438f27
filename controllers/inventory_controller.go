package controllers

import (
	"strconv"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/pkg/resp"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/services"
	"github.com/gin-gonic/gin"
)

type InventoryController struct{ Svc *services.InventoryService }

func NewInventoryController(s *services.InventoryService) *InventoryController {
	return &InventoryController{Svc: s}
}

// GET /api/inventory
func (h *InventoryController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/inventory
func (h *InventoryController) Create(c *gin.Context) {
	var req services.InventoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it, err := h.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, it)
}

// PUT /api/inventory/:id
func (h *InventoryController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.InventoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		if err.Error() == "inventory item not found" {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, it)
}

// DELETE /api/inventory/:id
func (h *InventoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		if err.Error() == "inventory item not found" {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Inventory item deleted successfully"})
}
