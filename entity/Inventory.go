package entity

type Inventory struct {
	InventoryID uint   `gorm:"primaryKey" json:"inventory_id"`
	Name        string `gorm:"uniqueIndex" json:"name"`
	Cost        int64  `json:"cost"` // cents per unit
	MaxQty      int    `json:"max_qty"`
	Qty         int    `json:"qty"`

	Recipes []Recipe `gorm:"foreignKey:InventoryID" json:"-"`
}

func (Inventory) TableName() string { return "inventory" }
