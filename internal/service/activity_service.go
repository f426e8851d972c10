package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"diary_gateway/internal/models"
	"diary_gateway/internal/repository"
)

// ActivityFilter narrows an activity listing to one user.
type ActivityFilter struct {
	Username string
	From     time.Time // inclusive; zero means no lower bound
	To       time.Time // inclusive; zero means no upper bound
	Type     string    // "" or one of the models.Activity* types
	Limit    int
}

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrMissingUsername  = errors.New("activity filter requires a username")
)

type ActivityService struct {
	repo repository.ActivityRepo
}

func NewActivityService(repo repository.ActivityRepo) *ActivityService {
	return &ActivityService{repo: repo}
}

// Record appends an entry; the caller decides whether a failure matters.
func (s *ActivityService) Record(ctx context.Context, a models.Activity) error {
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	}
	a.Type = normalizeActivityType(a.Type)
	return s.repo.Append(ctx, a)
}

func (s *ActivityService) List(ctx context.Context, f ActivityFilter) ([]models.Activity, error) {
	q, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}

// normalizeToUTC returns t in UTC, preserving zero values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeActivityType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

func normalizeAndValidateFilter(f ActivityFilter) (repository.ActivityQuery, error) {
	if strings.TrimSpace(f.Username) == "" {
		return repository.ActivityQuery{}, ErrMissingUsername
	}
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return repository.ActivityQuery{}, ErrInvalidTimeRange
	}
	return repository.ActivityQuery{
		Username: f.Username,
		From:     from,
		To:       to,
		Type:     normalizeActivityType(f.Type),
		Limit:    f.Limit,
	}, nil
}
