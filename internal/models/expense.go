package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a persisted dining expense record.
// Collection: expenses
//
// Amount is currency-agnostic and deliberately unconstrained (no
// non-negative check). Records carry no owner: every expense is visible
// to every caller.
type Expense struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Date   string             `bson:"date" json:"date"`
	Amount float64            `bson:"amount" json:"amount"`
}
