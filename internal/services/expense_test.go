package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/config"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/database"
)

func float64Ptr(v float64) *float64 { return &v }

func TestCreateExpenseValidation(t *testing.T) {
	s := NewExpenseService(nil)

	tests := []struct {
		name string
		req  CreateExpenseRequest
	}{
		{"missing name", CreateExpenseRequest{Date: "2026-01-15", Amount: float64Ptr(12.5)}},
		{"missing date", CreateExpenseRequest{Name: "Lunch", Amount: float64Ptr(12.5)}},
		{"missing amount", CreateExpenseRequest{Name: "Lunch", Date: "2026-01-15"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), &tt.req)
			if !apperrors.IsKind(err, apperrors.Validation) {
				t.Errorf("error = %v, want Validation", err)
			}
		})
	}
}

func TestDeleteExpenseInvalidID(t *testing.T) {
	s := NewExpenseService(nil)

	// a malformed id is indistinguishable from an unknown one
	err := s.Delete(context.Background(), "not-a-hex-id")
	if !apperrors.IsKind(err, apperrors.NotFound) {
		t.Errorf("error = %v, want NotFound", err)
	}
}

// TestExpenseLifecycle exercises create/list/delete against a real
// MongoDB instance.
func TestExpenseLifecycle(t *testing.T) {
	if os.Getenv("MONGODB_URI") == "" {
		t.Skip("MONGODB_URI not set, skipping live database test")
	}

	cfg := config.Load()
	cfg.MongoDatabase = "dinesaver_test"

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Disconnect(context.Background())

	s := NewExpenseService(db)

	created, err := s.Create(ctx, &CreateExpenseRequest{
		Name:   "Test Lunch",
		Date:   "2026-01-15",
		Amount: float64Ptr(1280),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("created expense has no id")
	}

	expenses, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, e := range expenses {
		if e.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("created expense not in list")
	}

	if err := s.Delete(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	err = s.Delete(ctx, created.ID.Hex())
	if !apperrors.IsKind(err, apperrors.NotFound) {
		t.Errorf("second delete = %v, want NotFound", err)
	}
}
