package migrations

import (
	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/database"
	"gorm.io/gorm"
)

// Reference tables in the same shape as the CSV files, so both sources go
// through the same header normalization.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20261001_reference_tables",
		Name: "Create reference tables: keywords, keyword_severity",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS keywords (
					keyword     TEXT PRIMARY KEY,
					less_harsh  TEXT,
					alternative TEXT,
					opposite    TEXT,
					category    TEXT,
					context     TEXT
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE TABLE IF NOT EXISTS keyword_severity (
					keyword  TEXT PRIMARY KEY,
					severity NUMERIC NOT NULL CHECK (severity >= 0)
				);
			`).Error
		},
	})
}
