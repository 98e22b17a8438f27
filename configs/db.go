package configs

import (
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Employee{},
		&entity.Container{}, &entity.Menu{},
		&entity.Inventory{}, &entity.Recipe{},
		&entity.Order{}, &entity.OrderItem{}, &entity.MenuItem{},
	)
}
