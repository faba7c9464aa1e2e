package main

import (
	"log"
	"os"

	"medinote-be/internal/entity"
	"medinote-be/internal/model"
	"medinote-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (gen_random_uuid lives in pgcrypto)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Doctor{},
		&model.Patient{},
		&model.Template{},
		&model.Session{},
		&model.AudioChunk{},
		&model.ChunkUploadNotification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Seed: shared default templates (doctor_id NULL, visible to everyone)
	log.Println("Step 3: Seeding default templates...")

	defaultTemplates := []model.Template{
		{Id: uuid.New(), Title: "SOAP Note", Type: string(entity.TemplateTypeDefault)},
		{Id: uuid.New(), Title: "Progress Note", Type: string(entity.TemplateTypePredefined)},
		{Id: uuid.New(), Title: "Intake Assessment", Type: string(entity.TemplateTypePredefined)},
	}

	for _, tpl := range defaultTemplates {
		var count int64
		if err := db.Model(&model.Template{}).
			Where("title = ? AND doctor_id IS NULL", tpl.Title).
			Count(&count).Error; err != nil {
			log.Printf("Warn: Failed to check template %q: %v", tpl.Title, err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&tpl).Error; err != nil {
			log.Printf("Warn: Failed to seed template %q: %v", tpl.Title, err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
