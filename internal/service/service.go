package service

import (
	"context"

	"diary_gateway/internal/backend"
	"diary_gateway/internal/models"
	"diary_gateway/internal/repository"
)

// Backend is the subset of the backend client the services depend on.
type Backend interface {
	Login(ctx context.Context, creds models.Credentials) (*backend.Response, error)
	Register(ctx context.Context, creds models.Credentials) (*backend.Response, error)
	FetchDiary(ctx context.Context, username string) (*backend.Response, error)
	WriteDiary(ctx context.Context, username string, entry models.DiaryEntry) (*backend.Response, error)
	ValidateBlockchain(ctx context.Context) (*backend.Response, error)
}

// Authorization forwards credentials; a nil error means the backend accepted them.
type Authorization interface {
	Login(ctx context.Context, creds models.Credentials) error
	Register(ctx context.Context, creds models.Credentials) error
}

// Diary reads and writes the diary of a logged-in user. The returned
// envelope is always safe to send to the browser, even with a non-nil error.
type Diary interface {
	Read(ctx context.Context, username string) (models.Envelope, error)
	Write(ctx context.Context, username string, entry models.DiaryEntry) (models.Envelope, error)
}

// Ledger checks blockchain integrity. Same envelope contract as Diary.
type Ledger interface {
	Validate(ctx context.Context) (models.Envelope, error)
}

// ActivityLog records and lists gateway actions.
type ActivityLog interface {
	Record(ctx context.Context, a models.Activity) error
	List(ctx context.Context, f ActivityFilter) ([]models.Activity, error)
}

type Service struct {
	Authorization
	Diary
	Ledger
	ActivityLog
}

func NewService(b Backend, repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(b),
		Diary:         NewDiaryService(b),
		Ledger:        NewLedgerService(b),
		ActivityLog:   NewActivityService(repos.ActivityRepo),
	}
}
