package entity

import "time"

type Order struct {
	OrderID    uint      `gorm:"primaryKey" json:"order_id"`
	Time       time.Time `json:"time"`
	Total      int64     `json:"total"` // cents, tax included
	EmployeeID uint      `json:"employee_id"`

	Employee   Employee    `json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"-"`
}
