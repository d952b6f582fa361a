package repository_test

import (
	"testing"

	"github.com/tdejong/Trading-Journal-Backend/internal/repository"
	"github.com/tdejong/Trading-Journal-Backend/internal/testutil"
)

// TestTradeRepository_MalformedImageColumn verifies that a corrupt
// reference_images column degrades to an empty list instead of failing
// the read. Rows written by hand or by older versions must stay readable.
func TestTradeRepository_MalformedImageColumn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTradeRepository(db)

	result, err := db.Exec(`
		INSERT INTO trade (name, open_price, direction, level, volume, reference_images)
		VALUES ('BTCUSDT', 100, 'long', 1, 1000, '{broken json')
	`)
	if err != nil {
		t.Fatalf("Failed to seed trade: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read seeded id: %v", err)
	}

	trade, err := repo.GetTrade(id)
	if err != nil {
		t.Fatalf("GetTrade() returned unexpected error: %v", err)
	}

	if trade.ReferenceImages == nil {
		t.Error("Expected non-nil image list, got nil")
	}
	if len(trade.ReferenceImages) != 0 {
		t.Errorf("Expected empty image list, got %v", trade.ReferenceImages)
	}
}
