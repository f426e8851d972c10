package service

import (
	"context"

	"diary_gateway/internal/models"
)

// MsgValidateUnavailable is returned when the integrity check cannot be obtained.
const MsgValidateUnavailable = "cannot connect to backend service"

const opValidate = "validate"

type LedgerService struct {
	backend Backend
}

func NewLedgerService(b Backend) *LedgerService {
	return &LedgerService{backend: b}
}

// Validate relays the backend verdict as-is, "warning" included. Only a
// missing or unparsable verdict turns into a synthesized error.
func (s *LedgerService) Validate(ctx context.Context) (models.Envelope, error) {
	resp, err := s.backend.ValidateBlockchain(ctx)
	if err != nil {
		return models.ErrorEnvelope(MsgValidateUnavailable), unavailable(opValidate, err)
	}
	env := resp.Envelope()
	if env.Raw == nil {
		return models.ErrorEnvelope(MsgValidateUnavailable), &RejectedError{Op: opValidate, Message: "response is not a JSON envelope"}
	}
	return env, nil
}
