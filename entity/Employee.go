package entity

const (
	RoleCashier = "cashier"
	RoleManager = "manager"
)

type Employee struct {
	EmployeeID uint   `gorm:"primaryKey" json:"employee_id"`
	Name       string `gorm:"uniqueIndex" json:"name"`
	Role       string `json:"role"`
	Salary     int64  `json:"salary"` // cents
	Password   string `json:"-"`      // bcrypt hash

	Orders []Order `gorm:"foreignKey:EmployeeID" json:"-"`
}
