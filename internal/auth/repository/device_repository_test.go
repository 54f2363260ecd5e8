package repository

import (
	"testing"

	authdomain "edclass-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDeviceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.DeviceToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSaveTokenAppendsIfAbsent(t *testing.T) {
	db := setupDeviceDB(t)
	repo := NewDeviceTokenRepository(db)
	userID := uuid.New().String()

	for _, token := range []string{"phone", "tablet", "phone"} {
		if err := repo.SaveToken(userID, token); err != nil {
			t.Fatalf("save %s: %v", token, err)
		}
	}

	tokens, err := repo.TokensByUserID(userID)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if len(tokens) != 2 || tokens[0] != "phone" || tokens[1] != "tablet" {
		t.Fatalf("expected [phone tablet] in registration order, got %v", tokens)
	}
}

func TestSameTokenAcrossUsers(t *testing.T) {
	db := setupDeviceDB(t)
	repo := NewDeviceTokenRepository(db)
	alice := uuid.New().String()
	bob := uuid.New().String()

	// A shared family tablet registers under both accounts.
	if err := repo.SaveToken(alice, "tablet"); err != nil {
		t.Fatalf("save for alice: %v", err)
	}
	if err := repo.SaveToken(bob, "tablet"); err != nil {
		t.Fatalf("save for bob: %v", err)
	}

	for _, userID := range []string{alice, bob} {
		tokens, err := repo.TokensByUserID(userID)
		if err != nil {
			t.Fatalf("tokens: %v", err)
		}
		if len(tokens) != 1 || tokens[0] != "tablet" {
			t.Fatalf("expected the shared token for %s, got %v", userID, tokens)
		}
	}
}

func TestTokensForUnknownUser(t *testing.T) {
	db := setupDeviceDB(t)
	repo := NewDeviceTokenRepository(db)

	tokens, err := repo.TokensByUserID(uuid.New().String())
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}
