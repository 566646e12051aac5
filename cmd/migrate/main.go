package main

import (
	"log"
	"os"

	"devonn-assistant-be/internal/model"
	"devonn-assistant-be/pkg/database"

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
	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	defer database.Close(db)

	log.Println("Starting turn analytics migration...")

	// 3. AutoMigrate analytics tables
	if err := db.AutoMigrate(&model.TurnRecord{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Read-side view for dashboards
	view := `CREATE OR REPLACE VIEW turn_intent_summary AS
		SELECT intent,
		       COUNT(*) AS turns,
		       COUNT(*) FILTER (WHERE fallback) AS fallbacks,
		       COUNT(*) FILTER (WHERE feedback = 'negative') AS negative_feedback,
		       AVG(confidence) AS avg_confidence
		FROM turn_records
		GROUP BY intent;`
	if err := db.Exec(view).Error; err != nil {
		log.Printf("Warn: Failed to create view turn_intent_summary: %v", err)
	}

	log.Println("✅ Migration completed")
}
