package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are exposed as methods so a Tx-scoped Store
// hands out repositories bound to the same transaction.
type Store interface {
	Users() Users
	Notes() Notes
	Tags() Tags

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user. A taken username is ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error
}

// Notes reads and writes notes. Every lookup is scoped to the owner so a
// note owned by someone else reads as ErrNotFound.
type Notes interface {
	// ListNotesByOwner returns the owner's notes in creation order with
	// TagIDs populated.
	ListNotesByOwner(ctx context.Context, ownerID string) ([]domain.Note, error)

	GetNote(ctx context.Context, ownerID, id string) (domain.Note, error)

	CreateNote(ctx context.Context, n domain.Note) error

	// UpdateNote writes title, content, flags, bookmarked_at and updated_at.
	UpdateNote(ctx context.Context, n domain.Note) error

	// DeleteNote removes the note and its tag links. Deleting a missing
	// note is not an error.
	DeleteNote(ctx context.Context, ownerID, id string) error

	// DeleteNotes removes every listed note of the owner and reports how
	// many rows went. Drivers may split a long list into several statements,
	// so run it inside WithTx when the delete must be all or nothing.
	DeleteNotes(ctx context.Context, ownerID string, ids []string) (int64, error)

	// AddNoteTag appends tagID to the end of the note's tag list. A tag
	// already on the note is ErrAlreadyExists.
	AddNoteTag(ctx context.Context, noteID, tagID string, now time.Time) error

	// RemoveNoteTag unlinks the tag; ErrNotFound when it was not linked.
	RemoveNoteTag(ctx context.Context, noteID, tagID string, now time.Time) error

	// ListNoteTags resolves the note's tags in insertion order.
	ListNoteTags(ctx context.Context, noteID string) ([]domain.Tag, error)
}

type Tags interface {
	// ListTagsByOwner returns the owner's tags in creation order.
	ListTagsByOwner(ctx context.Context, ownerID string) ([]domain.Tag, error)

	GetTag(ctx context.Context, ownerID, id string) (domain.Tag, error)

	CreateTag(ctx context.Context, t domain.Tag) error

	// RenameTag sets the name and bumps updated_at; ErrNotFound if missing.
	RenameTag(ctx context.Context, ownerID, id, name string, now time.Time) error

	// DeleteTag removes the tag and cascades to note links.
	DeleteTag(ctx context.Context, ownerID, id string) error
}
