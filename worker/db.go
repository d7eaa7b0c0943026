package worker

import (
	"fmt"

	"github.com/kofj/gorm-driver-d1/gormd1"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Ledger records uploaded assets in a D1 table so bulk runs can skip
// content that is already stored remotely.
type Ledger struct {
	db *gorm.DB
}

// Connect opens the D1 database and migrates the asset table.
func Connect(accountID, apiToken, databaseID string) (*Ledger, error) {
	dialect := gormd1.Open(fmt.Sprintf("d1://%s:%s@%s", accountID, apiToken, databaseID))
	db, err := gorm.Open(dialect, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("connecting to ledger database: %w", err)
	}

	if err := db.AutoMigrate(&Asset{}); err != nil {
		return nil, fmt.Errorf("migrating ledger schema: %w", err)
	}

	return &Ledger{db: db}, nil
}
