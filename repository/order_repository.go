package repository

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrders(limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var orders []entity.Order
	err := r.DB.Order("order_id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateOrder(o *entity.Order) error {
	return r.DB.Save(o).Error
}

func (r *OrderRepository) DeleteOrder(orderID uint) (int64, error) {
	res := r.DB.Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) DeleteOrderItem(id uint) (int64, error) {
	res := r.DB.Delete(&entity.OrderItem{}, id)
	return res.RowsAffected, res.Error
}

// ---------------- Menu item links ----------------

func (r *OrderRepository) CreateMenuItem(tx *gorm.DB, mi *entity.MenuItem) error {
	return tx.Create(mi).Error
}

func (r *OrderRepository) GetMenuItems(orderItemID uint) ([]entity.MenuItem, error) {
	var links []entity.MenuItem
	err := r.DB.Where("order_item_id = ?", orderItemID).Find(&links).Error
	return links, err
}

func (r *OrderRepository) DeleteMenuItem(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

// ---------------- Existence checks ----------------

func (r *OrderRepository) OrderExists(orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) OrderItemExists(orderItemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).Where("order_item_id = ?", orderItemID).Count(&count).Error
	return count > 0, err
}
