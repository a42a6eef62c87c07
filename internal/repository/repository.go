package repository

import (
	"context"
	"database/sql"

	soleus "soleus_remote"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*soleus.User, error)
}

// CaptureRepo stores reverse-engineered remote buttons.
type CaptureRepo interface {
	Append(ctx context.Context, b soleus.CapturedButton) error
	List(ctx context.Context) ([]soleus.CapturedButton, error)
}

type Repository struct {
	Captures CaptureRepo
	Auth     Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Captures: NewCaptureSQLite(db),
		Auth:     NewUserRepository(db),
	}
}
