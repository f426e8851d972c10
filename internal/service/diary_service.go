package service

import (
	"context"
	"errors"

	"diary_gateway/internal/models"
)

// Browser-facing messages for synthesized diary envelopes.
const (
	MsgDiaryReadFailed       = "failed to fetch diary"
	MsgDiaryReadUnavailable  = "failed to fetch diary: cannot connect to backend service"
	MsgDiaryWriteFailed      = "failed to write diary"
	MsgDiaryWriteUnavailable = "failed to write diary: cannot connect to backend service"
)

const (
	opDiaryRead  = "diary read"
	opDiaryWrite = "diary write"
)

type DiaryService struct {
	backend Backend
}

func NewDiaryService(b Backend) *DiaryService {
	return &DiaryService{backend: b}
}

// Read relays the backend diary view verbatim on success.
func (s *DiaryService) Read(ctx context.Context, username string) (models.Envelope, error) {
	return s.fetch(ctx, username, opDiaryRead, MsgDiaryReadFailed, MsgDiaryReadUnavailable)
}

// Write appends an entry and then re-reads the diary; the browser sees the
// re-read. The two backend calls are not atomic: another request may
// interleave between them. A failed write is still followed by the re-read
// and is reported in the returned error alongside any re-read failure.
func (s *DiaryService) Write(ctx context.Context, username string, entry models.DiaryEntry) (models.Envelope, error) {
	var writeErr error
	// the write reply is free-form text, only its HTTP status matters
	if _, err := s.backend.WriteDiary(ctx, username, entry); err != nil {
		writeErr = unavailable(opDiaryWrite, err)
	}
	env, err := s.fetch(ctx, username, opDiaryWrite, MsgDiaryWriteFailed, MsgDiaryWriteUnavailable)
	return env, errors.Join(writeErr, err)
}

func (s *DiaryService) fetch(ctx context.Context, username, op, failedMsg, unavailableMsg string) (models.Envelope, error) {
	resp, err := s.backend.FetchDiary(ctx, username)
	if err != nil {
		return models.ErrorEnvelope(unavailableMsg), unavailable(op, err)
	}
	env := resp.Envelope()
	if !env.IsSuccess() {
		return models.ErrorEnvelope(failedMsg), &RejectedError{Op: op, Message: env.Message}
	}
	return env, nil
}
