package entity

// Container names. Bowl/Plate/Bigger Plate are combo vessels; Appetizer and
// Drink rows are per-unit pricing wrappers with zero quotas.
const (
	ContainerBowl        = "Bowl"
	ContainerPlate       = "Plate"
	ContainerBiggerPlate = "Bigger Plate"
	ContainerAppetizer   = "Appetizer"
	ContainerDrink       = "Drink"
)

type Container struct {
	ContainerID     uint   `gorm:"primaryKey" json:"container_id"`
	Name            string `gorm:"uniqueIndex" json:"name"`
	Price           int64  `json:"price"` // cents
	NumberOfEntrees int    `json:"number_of_entrees"`
	NumberOfSides   int    `json:"number_of_sides"`

	OrderItems []OrderItem `gorm:"foreignKey:ContainerID" json:"-"`
}

func (Container) TableName() string { return "container" }
