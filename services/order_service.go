package services

import (
	"errors"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
	"gorm.io/gorm"
)

// OrderPublisher receives every successfully created order. The websocket
// feed implements it; a nil publisher is allowed.
type OrderPublisher interface {
	PublishOrder(o *entity.Order)
}

type OrderService struct {
	DB            *gorm.DB
	Repo          *repository.OrderRepository
	ContainerRepo *repository.ContainerRepository
	MenuRepo      *repository.MenuRepository
	EmployeeRepo  *repository.EmployeeRepository
	Publisher     OrderPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	containerRepo *repository.ContainerRepository,
	menuRepo *repository.MenuRepository,
	employeeRepo *repository.EmployeeRepository,
) *OrderService {
	return &OrderService{
		DB:            db,
		Repo:          repo,
		ContainerRepo: containerRepo,
		MenuRepo:      menuRepo,
		EmployeeRepo:  employeeRepo,
	}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	Time       string `json:"time" binding:"required"`
	Total      int64  `json:"total" binding:"min=0"`
	EmployeeID uint   `json:"employee_id" binding:"required"`
}

type CreateOrderItemReq struct {
	OrderID     uint `json:"order_id" binding:"required"`
	Quantity    int  `json:"quantity" binding:"min=1"`
	ContainerID uint `json:"container_id" binding:"required"`
}

type CreateMenuItemReq struct {
	OrderItemID uint `json:"order_item_id" binding:"required"`
	MenuID      uint `json:"menu_id" binding:"required"`
	Quantity    int  `json:"quantity"` // omitted means 1
}

// ----- Orders -----

func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	t, err := parseOrderTime(req.Time)
	if err != nil {
		return nil, errors.New("invalid time format")
	}
	if _, err := s.EmployeeRepo.FindByID(req.EmployeeID); err != nil {
		return nil, errors.New("employee not found")
	}

	order := entity.Order{Time: t, Total: req.Total, EmployeeID: req.EmployeeID}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	if s.Publisher != nil {
		s.Publisher.PublishOrder(&order)
	}
	return &order, nil
}

func (s *OrderService) List(limit int) ([]entity.Order, error) {
	return s.Repo.ListOrders(limit)
}

func (s *OrderService) Update(orderID uint, req *CreateOrderReq) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, errors.New("order not found")
	}
	t, err := parseOrderTime(req.Time)
	if err != nil {
		return nil, errors.New("invalid time format")
	}
	o.Time = t
	o.Total = req.Total
	o.EmployeeID = req.EmployeeID
	if err := s.Repo.UpdateOrder(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Delete(orderID uint) error {
	affected, err := s.Repo.DeleteOrder(orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("order not found")
	}
	return nil
}

// ----- Order items -----

func (s *OrderService) CreateOrderItem(req *CreateOrderItemReq) (*entity.OrderItem, error) {
	ok, err := s.Repo.OrderExists(req.OrderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("order not found")
	}
	if _, err := s.ContainerRepo.FindByID(req.ContainerID); err != nil {
		return nil, errors.New("container not found")
	}

	oi := entity.OrderItem{OrderID: req.OrderID, ContainerID: req.ContainerID, Quantity: req.Quantity}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrderItem(tx, &oi)
	})
	if err != nil {
		return nil, err
	}
	return &oi, nil
}

func (s *OrderService) ListOrderItems(orderID uint) ([]entity.OrderItem, error) {
	return s.Repo.GetOrderItems(orderID)
}

// ----- Menu item links -----

func (s *OrderService) CreateMenuItem(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	ok, err := s.Repo.OrderItemExists(req.OrderItemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("order item not found")
	}
	if _, err := s.MenuRepo.FindByID(req.MenuID); err != nil {
		return nil, errors.New("menu item not found")
	}

	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	mi := entity.MenuItem{OrderItemID: req.OrderItemID, MenuID: req.MenuID, Quantity: qty}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateMenuItem(tx, &mi)
	})
	if err != nil {
		return nil, err
	}
	return &mi, nil
}

// Order timestamps arrive either as full RFC3339 or as the kiosk's
// minute-resolution form (2006-01-02T15:04).
func parseOrderTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", v)
}
