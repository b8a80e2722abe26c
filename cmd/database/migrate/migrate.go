package migration

import (
	"fmt"
	"log"

	"foodkeeper-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DeviceToken{}); err != nil {
		log.Fatalf("Error migrating device token database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodGroup{}); err != nil {
		log.Fatalf("Error migrating food group database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodNotification{}); err != nil {
		log.Fatalf("Error migrating food notification database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
