package controllers

import (
	"net/http"
	"strconv"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/pkg/resp"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/services"
	"github.com/gin-gonic/gin"
)

type ContainerController struct{ Svc *services.ContainerService }

func NewContainerController(s *services.ContainerService) *ContainerController {
	return &ContainerController{Svc: s}
}

// GET /api/containers
// Part of the kiosk contract: returns the bare array, including the
// Appetizer/Drink pricing wrappers.
func (h *ContainerController) List(c *gin.Context) {
	containers, err := h.Svc.List(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, containers)
}

// POST /api/containers
func (h *ContainerController) Create(c *gin.Context) {
	var req services.ContainerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /api/containers/:id
func (h *ContainerController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.ContainerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		if err.Error() == "container not found" {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /api/containers/:id
func (h *ContainerController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		if err.Error() == "container not found" {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Container deleted successfully"})
}
