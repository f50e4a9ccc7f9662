package database

import (
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every model and seeds the reference
// dictionaries when they are empty.
func Migrate(db *gorm.DB) error {
	// Needed for the uuid_generate_v4() column default.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.Trade{},
		&models.Region{},
		&models.Agency{},
		&models.LaborRequest{},
		&models.CraftRequirement{},
		&models.Notification{},
		&models.AgencyResponse{},
	)
	if err != nil {
		return err
	}

	if err := seedReferenceData(db); err != nil {
		return err
	}

	logger.Info("AutoMigrate completed")
	return nil
}

func seedReferenceData(db *gorm.DB) error {
	var tradeCount int64
	if err := db.Model(&models.Trade{}).Count(&tradeCount).Error; err != nil {
		return err
	}
	if tradeCount == 0 {
		trades := []models.Trade{
			{Name: "Electrician"},
			{Name: "Plumber"},
			{Name: "Carpenter"},
			{Name: "Welder"},
			{Name: "Ironworker"},
			{Name: "Concrete Finisher"},
			{Name: "HVAC Technician"},
			{Name: "Laborer"},
		}
		if err := db.Create(&trades).Error; err != nil {
			return err
		}
	}

	var regionCount int64
	if err := db.Model(&models.Region{}).Count(&regionCount).Error; err != nil {
		return err
	}
	if regionCount == 0 {
		regions := []models.Region{
			{Name: "Gulf Coast"},
			{Name: "Midwest"},
			{Name: "Mountain West"},
			{Name: "Northeast"},
			{Name: "Pacific Northwest"},
			{Name: "Southeast"},
			{Name: "Southwest"},
		}
		if err := db.Create(&regions).Error; err != nil {
			return err
		}
	}

	return nil
}
