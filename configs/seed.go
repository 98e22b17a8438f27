package configs

import (
	"log"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedManager creates the first manager account from env, once.
func SeedManager() error {
	db := DB()
	name := getEnv("MANAGER_NAME", "")
	pass := getEnv("MANAGER_PASSWORD", "")
	if name == "" || pass == "" {
		log.Println("skip seeding manager: missing MANAGER_NAME/MANAGER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Employee{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		log.Println("manager already exists:", name)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	manager := entity.Employee{
		Name:     name,
		Role:     entity.RoleManager,
		Salary:   0,
		Password: string(hash),
	}
	return db.Create(&manager).Error
}

// SeedCatalog seeds the container rows the pricing engine depends on and a
// starter menu. Prices are cents.
func SeedCatalog() error {
	db := DB()

	containers := []entity.Container{
		{Name: entity.ContainerBowl, Price: 830, NumberOfEntrees: 1, NumberOfSides: 1},
		{Name: entity.ContainerPlate, Price: 980, NumberOfEntrees: 2, NumberOfSides: 1},
		{Name: entity.ContainerBiggerPlate, Price: 1130, NumberOfEntrees: 3, NumberOfSides: 1},
		{Name: entity.ContainerAppetizer, Price: 200, NumberOfEntrees: 0, NumberOfSides: 0},
		{Name: entity.ContainerDrink, Price: 240, NumberOfEntrees: 0, NumberOfSides: 0},
	}
	for _, c := range containers {
		if err := db.FirstOrCreate(&entity.Container{}, entity.Container{Name: c.Name}).Error; err != nil {
			return err
		}
		if err := db.Model(&entity.Container{}).Where("name = ?", c.Name).
			Updates(map[string]any{
				"price":             c.Price,
				"number_of_entrees": c.NumberOfEntrees,
				"number_of_sides":   c.NumberOfSides,
			}).Error; err != nil {
			return err
		}
	}

	menu := []entity.Menu{
		{Name: "Orange Chicken", Type: entity.MenuTypeEntree, ExtraCost: 0, Calories: 490},
		{Name: "Grilled Teriyaki Chicken", Type: entity.MenuTypeEntree, ExtraCost: 0, Calories: 300},
		{Name: "Honey Walnut Shrimp", Type: entity.MenuTypeEntree, ExtraCost: 150, Calories: 360},
		{Name: "Broccoli Beef", Type: entity.MenuTypeEntree, ExtraCost: 0, Calories: 150},
		{Name: "Mushroom Chicken", Type: entity.MenuTypeEntree, ExtraCost: 0, Calories: 220},
		{Name: "Chow Mein", Type: entity.MenuTypeSide, ExtraCost: 0, Calories: 510},
		{Name: "Fried Rice", Type: entity.MenuTypeSide, ExtraCost: 0, Calories: 520},
		{Name: "White Rice", Type: entity.MenuTypeSide, ExtraCost: 0, Calories: 380},
		{Name: "Super Greens", Type: entity.MenuTypeSide, ExtraCost: 0, Calories: 90},
		{Name: "Chicken Egg Roll", Type: entity.MenuTypeAppetizer, ExtraCost: 0, Calories: 200},
		{Name: "Cream Cheese Rangoon", Type: entity.MenuTypeAppetizer, ExtraCost: 0, Calories: 190},
		{Name: "Dr Pepper", Type: entity.MenuTypeDrink, ExtraCost: 0, Calories: 150},
		{Name: "Sweet Tea", Type: entity.MenuTypeDrink, ExtraCost: 0, Calories: 120},
		{Name: "Water", Type: entity.MenuTypeDrink, ExtraCost: 0, Calories: 0},
	}
	for _, m := range menu {
		if err := db.FirstOrCreate(&entity.Menu{}, entity.Menu{Name: m.Name, Type: m.Type, ExtraCost: m.ExtraCost, Calories: m.Calories}).Error; err != nil {
			return err
		}
	}

	log.Println("catalog seeded")
	return nil
}
