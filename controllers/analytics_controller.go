package controllers

import (
	"strconv"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/pkg/resp"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/services"
	"github.com/gin-gonic/gin"
)

type AnalyticsController struct{ Svc *services.AnalyticsService }

func NewAnalyticsController(s *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: s}
}

// GET /api/analytics/low-stock?limit=
func (h *AnalyticsController) LowStock(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	rows, err := h.Svc.LowStock(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /api/analytics/high-sales-employees?startDate=&endDate=&limit=
func (h *AnalyticsController) HighSalesEmployees(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	rows, err := h.Svc.HighSalesEmployees(c.Query("startDate"), c.Query("endDate"), limit)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, rows)
}

// GET /api/analytics/item-sales?startDateTime=&endDateTime=&limit=
func (h *AnalyticsController) ItemSales(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	rows, err := h.Svc.ItemSales(c.Query("startDateTime"), c.Query("endDateTime"), limit)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, rows)
}

// GET /api/analytics/hourly-sales?date=
func (h *AnalyticsController) HourlySales(c *gin.Context) {
	rows, err := h.Svc.HourlySales(c.Query("date"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, rows)
}
