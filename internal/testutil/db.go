package testutil

import (
	"EcoPanier/entities"
	"EcoPanier/pkg/expiry"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory sqlite database with every table migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Session{},
		&entities.InventoryItem{},
		&entities.ShoppingListItem{},
		&entities.Recipe{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewSession inserts a session row and returns its id.
func NewSession(t *testing.T, db *gorm.DB) string {
	t.Helper()
	session := entities.Session{ID: uuid.New(), Language: "fr"}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("session: %v", err)
	}
	return session.ID.String()
}

// FixedClock pins "now" to noon UTC on date (YYYY-MM-DD).
func FixedClock(t *testing.T, date string) *expiry.Clock {
	t.Helper()
	d, err := expiry.ParseDate(date)
	if err != nil {
		t.Fatalf("clock: %v", err)
	}
	now := d.Add(12 * time.Hour)
	return expiry.NewClock(time.UTC, func() time.Time { return now })
}
