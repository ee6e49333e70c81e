package database

import (
	"log"
	"os"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"seedwizard/entities"
	"seedwizard/pkg/location/frostdata"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Profile{},
		&entities.Seed{},
		&entities.ZipFrost{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// SeedFrostTable fills zip_frost_data from the configured CSV/XLSX files on
// first boot. Lookups for ZIPs not in the table fall back to regional
// estimation, so a missing file only degrades accuracy.
func SeedFrostTable(db *gorm.DB, csvPath, xlsxPath string) {
	var n int64
	if err := db.Model(&entities.ZipFrost{}).Count(&n).Error; err != nil {
		log.Printf("[frostdata] count: %v", err)
		return
	}
	if n > 0 {
		return
	}

	if csvPath != "" {
		if _, err := os.Stat(csvPath); err != nil {
			log.Printf("[frostdata] %s not found, skipping import", csvPath)
			csvPath = ""
		}
	}
	if csvPath == "" && xlsxPath == "" {
		return
	}

	rows, err := frostdata.LoadFromFiles(csvPath, xlsxPath)
	if err != nil {
		log.Printf("[frostdata] import warn: %v", err)
		return
	}
	if err := db.CreateInBatches(rows, 500).Error; err != nil {
		log.Printf("[frostdata] insert: %v", err)
		return
	}
	log.Printf("[frostdata] imported %d zip rows", len(rows))
}
