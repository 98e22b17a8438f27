package entity

// Recipe links a menu item to the inventory it consumes per unit sold.
type Recipe struct {
	RecipeID    uint    `gorm:"primaryKey" json:"recipe_id"`
	MenuID      uint    `json:"menu_id"`
	InventoryID uint    `json:"inventory_id"`
	Qty         float64 `json:"qty"`

	Menu      Menu      `json:"-"`
	Inventory Inventory `json:"-"`
}
