package migration

import (
	"errors"
	"fmt"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	log := logger.GetLogger()

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Errorw("Error creating uuid-ossp extension", "error", err)
		return err
	}

	models := []interface{}{
		&entities.Student{},
		&entities.Group{},
		&entities.Category{},
		&entities.Expense{},
		&entities.Settlement{},
		&entities.PaymentTransaction{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Errorw("Error migrating model", "model", fmt.Sprintf("%T", model), "error", err)
			return err
		}
	}

	if err := SeedCategories(db); err != nil {
		log.Errorw("Error seeding categories", "error", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}

// SeedCategories inserts every default category that does not exist yet.
func SeedCategories(db *gorm.DB) error {
	for _, name := range domain.DefaultCategories {
		var existing entities.Category
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&entities.Category{ID: uuid.New(), Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
