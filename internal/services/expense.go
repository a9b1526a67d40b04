package services

import (
	"context"
	"errors"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/database"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ExpenseService struct {
	db  *database.DB
	log *zap.SugaredLogger
}

func NewExpenseService(db *database.DB) *ExpenseService {
	return &ExpenseService{db: db, log: logger.GetLogger("expenses")}
}

// CreateExpenseRequest carries the create payload. Amount is a pointer
// so "missing" and "zero" are distinguishable.
type CreateExpenseRequest struct {
	Name   string   `json:"name"`
	Date   string   `json:"date"`
	Amount *float64 `json:"amount"`
}

func (r *CreateExpenseRequest) validate() error {
	if r.Name == "" {
		return apperrors.New(apperrors.Validation, "name is required")
	}
	if r.Date == "" {
		return apperrors.New(apperrors.Validation, "date is required")
	}
	if r.Amount == nil {
		return apperrors.New(apperrors.Validation, "amount is required")
	}
	// No numeric-range or non-negative check: negative amounts are
	// accepted, matching the store contract.
	return nil
}

// List returns the full collection in store-native order. No filtering,
// no pagination, no ownership scoping.
func (s *ExpenseService) List(ctx context.Context) ([]models.Expense, error) {
	cursor, err := s.db.Expenses().Find(ctx, bson.D{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to list expenses", err)
	}
	defer cursor.Close(ctx)

	expenses := make([]models.Expense, 0)
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to decode expenses", err)
	}

	return expenses, nil
}

// Create validates the payload and inserts the record, returning it
// with the store-assigned id.
func (s *ExpenseService) Create(ctx context.Context, req *CreateExpenseRequest) (*models.Expense, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	expense := models.Expense{
		Name:   req.Name,
		Date:   req.Date,
		Amount: *req.Amount,
	}

	result, err := s.db.Expenses().InsertOne(ctx, expense)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to create expense", err)
	}

	expense.ID = result.InsertedID.(primitive.ObjectID)
	s.log.Infow("expense created", "id", expense.ID.Hex(), "name", expense.Name)

	return &expense, nil
}

// Delete removes the record with the given id. An unknown id is
// NotFound, and so is one that cannot be a store id at all.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NotFoundf("expense not found")
	}

	result := s.db.Expenses().FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NotFoundf("expense not found")
		}
		return apperrors.Wrap(apperrors.Upstream, "failed to delete expense", err)
	}

	s.log.Infow("expense deleted", "id", id)
	return nil
}
