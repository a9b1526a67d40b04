package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile is a locally persisted profile record.
// Collection: user_profiles
//
// This subsystem is independent of the Firebase login flow: nothing
// links a profile to the identity used at /api/login, and the two are
// intentionally not reconciled.
type UserProfile struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	// Password holds the bcrypt hash. Hashing happens explicitly in the
	// create/update operations, never as a storage-layer side effect.
	Password    string     `bson:"password" json:"-"`
	Email       string     `bson:"email" json:"email"`
	Gender      string     `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth *time.Time `bson:"dateOfBirth,omitempty" json:"date_of_birth,omitempty"`
}
