package entity

// Menu item types as stored in the menu.type column.
const (
	MenuTypeEntree    = "Entree"
	MenuTypeSide      = "Side"
	MenuTypeAppetizer = "Appetizer"
	MenuTypeDrink     = "Drink"
)

type Menu struct {
	MenuID    uint   `gorm:"primaryKey" json:"menu_id"`
	Name      string `gorm:"uniqueIndex" json:"name"`
	Type      string `json:"type"`
	ExtraCost int64  `json:"extra_cost"` // cents
	Calories  int    `json:"calories"`

	Recipes   []Recipe   `gorm:"foreignKey:MenuID" json:"-"`
	MenuItems []MenuItem `gorm:"foreignKey:MenuID" json:"-"`
}

func (Menu) TableName() string { return "menu" }
