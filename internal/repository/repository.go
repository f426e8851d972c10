package repository

import (
	"context"
	"database/sql"
	"time"

	"diary_gateway/internal/models"
)

// ActivityQuery selects activity entries of one user. Zero From/To mean no
// bound, empty Type means any type, Limit <= 0 means the default page size.
type ActivityQuery struct {
	Username string
	From     time.Time
	To       time.Time
	Type     string
	Limit    int
}

type ActivityRepo interface {
	Append(ctx context.Context, a models.Activity) error
	List(ctx context.Context, q ActivityQuery) ([]models.Activity, error)
}

type Repository struct {
	ActivityRepo ActivityRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ActivityRepo: NewActivitySQLite(db),
	}
}
