package service

import (
	"context"

	"diary_gateway/internal/models"
)

const (
	opLogin    = "login"
	opRegister = "register"
)

// AuthService forwards credentials to the backend. It keeps no state and
// never sees a password beyond the call.
type AuthService struct {
	backend Backend
}

func NewAuthService(b Backend) *AuthService {
	return &AuthService{backend: b}
}

func (s *AuthService) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := s.backend.Login(ctx, creds)
	if err != nil {
		return unavailable(opLogin, err)
	}
	if resp.Status() != models.StatusSuccess {
		return &RejectedError{Op: opLogin, Message: resp.Message()}
	}
	return nil
}

func (s *AuthService) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := s.backend.Register(ctx, creds)
	if err != nil {
		return unavailable(opRegister, err)
	}
	if resp.Status() != models.StatusSuccess {
		return &RejectedError{Op: opRegister, Message: resp.Message()}
	}
	return nil
}
