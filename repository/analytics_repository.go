package repository

import (
	"time"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

type LowStockRow struct {
	InventoryID     uint    `json:"inventory_id"`
	Name            string  `json:"name"`
	Cost            int64   `json:"cost"`
	MaxQty          int     `json:"max_qty"`
	Qty             int     `json:"qty"`
	StockPercentage float64 `json:"stock_percentage"`
}

func (r *AnalyticsRepository) LowStock(limit int) ([]LowStockRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []LowStockRow
	err := r.DB.Raw(`
		SELECT inventory_id, name, cost, max_qty, qty,
		       (CAST(qty AS FLOAT) / max_qty) * 100 AS stock_percentage
		FROM inventory
		WHERE qty < max_qty
		ORDER BY stock_percentage ASC LIMIT ?`, limit).Scan(&out).Error
	return out, err
}

type EmployeeSalesRow struct {
	EmployeeID uint   `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	TotalSales int64  `json:"total_sales"`
}

func (r *AnalyticsRepository) HighSalesEmployees(start, end time.Time, limit int) ([]EmployeeSalesRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []EmployeeSalesRow
	err := r.DB.Raw(`
		SELECT e.employee_id, e.name, e.role, SUM(o.total) AS total_sales
		FROM employees e
		JOIN orders o ON e.employee_id = o.employee_id
		WHERE o.time BETWEEN ? AND ?
		GROUP BY e.employee_id, e.name, e.role
		ORDER BY total_sales DESC
		LIMIT ?`, start, end, limit).Scan(&out).Error
	return out, err
}

type ItemSalesRow struct {
	ItemName          string `json:"item_name"`
	ItemType          string `json:"item_type"`
	TotalQuantitySold int64  `json:"total_quantity_sold"`
	TotalSales        int64  `json:"total_sales"`
}

func (r *AnalyticsRepository) ItemSales(start, end time.Time, limit int) ([]ItemSalesRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []ItemSalesRow
	err := r.DB.Raw(`
		SELECT m.name AS item_name, m.type AS item_type,
		       SUM(mi.quantity) AS total_quantity_sold,
		       SUM(mi.quantity * (c.price + COALESCE(m.extra_cost, 0))) AS total_sales
		FROM orders o
		JOIN order_items oi ON o.order_id = oi.order_id
		JOIN menu_items mi ON oi.order_item_id = mi.order_item_id
		JOIN menu m ON mi.menu_id = m.menu_id
		JOIN container c ON oi.container_id = c.container_id
		WHERE o.time BETWEEN ? AND ?
		GROUP BY m.name, m.type
		ORDER BY total_quantity_sold DESC
		LIMIT ?`, start, end, limit).Scan(&out).Error
	return out, err
}

type HourlySalesRow struct {
	Hour       string `json:"hour"`
	TotalSales int64  `json:"total_sales"`
}

func (r *AnalyticsRepository) HourlySales(date string) ([]HourlySalesRow, error) {
	var out []HourlySalesRow
	err := r.DB.Raw(`
		SELECT strftime('%Y-%m-%d %H:00', time) AS hour, SUM(total) AS total_sales
		FROM orders
		WHERE date(time) = ?
		GROUP BY hour
		ORDER BY hour ASC`, date).Scan(&out).Error
	return out, err
}
