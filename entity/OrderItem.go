package entity

// OrderItem is one container instance inside an order.
type OrderItem struct {
	OrderItemID uint `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint `json:"order_id"`
	ContainerID uint `json:"container_id"`
	Quantity    int  `json:"quantity"`

	Order     Order      `json:"-"`
	Container Container  `json:"-"`
	MenuItems []MenuItem `gorm:"foreignKey:OrderItemID" json:"-"`
}
