package migration

import (
	"fmt"
	"log"

	"jobcost-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Project{}); err != nil {
		log.Fatalf("Error migrating project database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Expense{}); err != nil {
		log.Fatalf("Error migrating expense database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HoursEntry{}); err != nil {
		log.Fatalf("Error migrating hours entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MileageEntry{}); err != nil {
		log.Fatalf("Error migrating mileage entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptUpload{}); err != nil {
		log.Fatalf("Error migrating receipt upload database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptAnalysis{}); err != nil {
		log.Fatalf("Error migrating receipt analysis database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptItem{}); err != nil {
		log.Fatalf("Error migrating receipt item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
