package controllers

import (
	"strconv"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/pkg/resp"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/services"
	"github.com/gin-gonic/gin"
)

type EmployeeController struct{ Svc *services.EmployeeService }

func NewEmployeeController(s *services.EmployeeService) *EmployeeController {
	return &EmployeeController{Svc: s}
}

// GET /api/employees
func (h *EmployeeController) List(c *gin.Context) {
	employees, err := h.Svc.List(c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, employees)
}

// POST /api/employees
func (h *EmployeeController) Create(c *gin.Context) {
	var req services.EmployeeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	e, err := h.Svc.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, e)
}

// PUT /api/employees/:id
func (h *EmployeeController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req services.EmployeeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	e, err := h.Svc.Update(uint(id), &req)
	if err != nil {
		if err.Error() == "employee not found" {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, e)
}

// DELETE /api/employees/:id
func (h *EmployeeController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(uint(id)); err != nil {
		if err.Error() == "employee not found" {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Employee deleted successfully"})
}
