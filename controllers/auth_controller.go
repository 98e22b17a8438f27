package controllers

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/pkg/resp"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /api/login
func (h *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Login(&req)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, out)
}

// POST /api/verify-role
func (h *AuthController) VerifyRole(c *gin.Context) {
	var req services.VerifyRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.VerifyRole(&req); err != nil {
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"role": req.Role})
}
