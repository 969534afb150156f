package storage

import (
	"context"

	"github.com/mcoot/cardbank/internal/model"
)

// Storage mirrors ledger snapshots for observers outside the terminal.
// The terminal never reads its own state back from here.
type Storage interface {
	// SaveSession stores a snapshot and marks it as the latest session
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	GetLatestSession(ctx context.Context) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
}
