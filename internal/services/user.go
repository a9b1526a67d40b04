package services

import (
	"context"
	"errors"
	"time"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/database"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/logger"
	"github.com/HirokiTakaya/Dine-Saver-Web/internal/models"
	"github.com/HirokiTakaya/Dine-Saver-Web/pkg/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// UserProfileService manages the local profile records. This subsystem
// has no relationship to the Firebase login flow; the two
// authentication paths are deliberately kept separate.
type UserProfileService struct {
	db  *database.DB
	log *zap.SugaredLogger
}

func NewUserProfileService(db *database.DB) *UserProfileService {
	return &UserProfileService{db: db, log: logger.GetLogger("profiles")}
}

type CreateProfileRequest struct {
	Username    string     `json:"username"`
	Password    string     `json:"password"`
	Email       string     `json:"email"`
	Gender      string     `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

type UpdateProfileRequest struct {
	Password    string     `json:"password,omitempty"`
	Email       string     `json:"email,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// Get returns the profile for username. The password hash stays on the
// record but is never serialized to JSON.
func (s *UserProfileService) Get(ctx context.Context, username string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.UserProfiles().FindOne(ctx, bson.M{"username": username}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFoundf("user profile not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to load user profile", err)
	}
	return &profile, nil
}

// Create inserts a new profile. Hashing the password is an explicit
// step of this operation, not a storage hook.
func (s *UserProfileService) Create(ctx context.Context, req *CreateProfileRequest) (*models.UserProfile, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, apperrors.New(apperrors.Validation, "username, password and email are required")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to hash password", err)
	}

	profile := models.UserProfile{
		Username:    req.Username,
		Password:    hashed,
		Email:       req.Email,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	}

	result, err := s.db.UserProfiles().InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Validationf("username %q is already taken", req.Username)
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to create user profile", err)
	}

	profile.ID = result.InsertedID.(primitive.ObjectID)
	s.log.Infow("user profile created", "username", profile.Username)

	return &profile, nil
}

// Update applies the supplied fields to an existing profile. A supplied
// password is re-hashed before the write.
func (s *UserProfileService) Update(ctx context.Context, username string, req *UpdateProfileRequest) (*models.UserProfile, error) {
	set := bson.M{}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.Upstream, "failed to hash password", err)
		}
		set["password"] = hashed
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.Gender != "" {
		set["gender"] = req.Gender
	}
	if req.DateOfBirth != nil {
		set["dateOfBirth"] = req.DateOfBirth
	}

	if len(set) == 0 {
		return nil, apperrors.New(apperrors.Validation, "no fields to update")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var profile models.UserProfile
	err := s.db.UserProfiles().
		FindOneAndUpdate(ctx, bson.M{"username": username}, bson.M{"$set": set}, opts).
		Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFoundf("user profile not found")
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to update user profile", err)
	}

	s.log.Infow("user profile updated", "username", username)
	return &profile, nil
}
