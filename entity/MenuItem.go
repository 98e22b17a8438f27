package entity

// MenuItem is the menu_items link table: one menu entry (entree, side,
// appetizer or drink) inside an order item.
type MenuItem struct {
	MenuItemID  uint `gorm:"primaryKey" json:"menu_item_id"`
	OrderItemID uint `json:"order_item_id"`
	MenuID      uint `json:"menu_id"`
	Quantity    int  `json:"quantity"`

	OrderItem OrderItem `json:"-"`
	Menu      Menu      `json:"-"`
}
