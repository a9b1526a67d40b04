package services

import (
	"context"
	"testing"

	"github.com/HirokiTakaya/Dine-Saver-Web/internal/apperrors"
)

func TestCreateProfileValidation(t *testing.T) {
	s := NewUserProfileService(nil)

	tests := []struct {
		name string
		req  CreateProfileRequest
	}{
		{"missing username", CreateProfileRequest{Password: "pw", Email: "a@b.c"}},
		{"missing password", CreateProfileRequest{Username: "taro", Email: "a@b.c"}},
		{"missing email", CreateProfileRequest{Username: "taro", Password: "pw"}},
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

func TestUpdateProfileNoFields(t *testing.T) {
	s := NewUserProfileService(nil)

	_, err := s.Update(context.Background(), "taro", &UpdateProfileRequest{})
	if !apperrors.IsKind(err, apperrors.Validation) {
		t.Errorf("error = %v, want Validation", err)
	}
}
