// Package store is the persistent credential store of the client: the access
// token, the refresh token and the serialized user profile, kept under fixed
// namespaced keys in a local SQLite database.
//
// Writes either fully succeed or return a *StorageError. Reads never fail:
// a read error or a missing key is logged and reported as absence, which
// callers treat as "not authenticated".
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/crammer/internal/client/migrations"
	"github.com/dmitrijs2005/crammer/internal/client/models"
	"github.com/dmitrijs2005/crammer/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/crammer/internal/dbx"
	"github.com/dmitrijs2005/crammer/internal/filex"
	"github.com/dmitrijs2005/crammer/internal/logging"

	_ "modernc.org/sqlite"
)

// Fixed storage keys.
const (
	AccessTokenKey  = "@crammer_access_token"
	RefreshTokenKey = "@crammer_refresh_token"
	UserKey         = "@crammer_user"
)

// MemoryDSN opens a private in-memory database. Useful in tests.
const MemoryDSN = ":memory:"

type Store struct {
	db  *sql.DB
	log logging.Logger
}

// New wraps an already migrated database.
func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "credential_store")}
}

// Open opens (creating if needed) the SQLite database at path, applies the
// embedded migrations and returns a ready Store.
func Open(ctx context.Context, path string, log logging.Logger) (*Store, error) {
	if path != MemoryDSN && !strings.HasPrefix(path, "file:") {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("prepare store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// SQLite serialises writers anyway; one connection also keeps a
	// ":memory:" database alive and shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(db, log), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// StoreTokens writes both tokens in a single transaction: either both are
// stored or neither is.
func (s *Store) StoreTokens(ctx context.Context, tokens models.TokenData) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, AccessTokenKey, []byte(tokens.AccessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, RefreshTokenKey, []byte(tokens.RefreshToken))
	})
	if err != nil {
		s.log.Error(ctx, "error storing tokens", "error", err)
		return &StorageError{Op: "store tokens", Err: err}
	}
	return nil
}

// StoreUser serializes user as JSON under UserKey.
func (s *Store) StoreUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return &StorageError{Op: "store user", Key: UserKey, Err: err}
	}

	if err := credentials.NewSQLiteRepository(s.db).Set(ctx, UserKey, data); err != nil {
		s.log.Error(ctx, "error storing user", "error", err)
		return &StorageError{Op: "store user", Key: UserKey, Err: err}
	}
	return nil
}

// AccessToken returns the stored access token or "".
func (s *Store) AccessToken(ctx context.Context) string {
	return s.getString(ctx, AccessTokenKey)
}

// RefreshToken returns the stored refresh token or "".
func (s *Store) RefreshToken(ctx context.Context) string {
	return s.getString(ctx, RefreshTokenKey)
}

// User returns the cached profile, or nil when it is missing or unreadable.
func (s *Store) User(ctx context.Context) *models.User {
	data, err := credentials.NewSQLiteRepository(s.db).Get(ctx, UserKey)
	if err != nil {
		s.log.Warn(ctx, "error getting user", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn(ctx, "error decoding stored user", "error", err)
		return nil
	}
	return &u
}

// Clear removes all three keys. Clearing an empty store succeeds.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return credentials.NewSQLiteRepository(tx).Delete(ctx, AccessTokenKey, RefreshTokenKey, UserKey)
	})
	if err != nil {
		s.log.Error(ctx, "error clearing auth", "error", err)
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}

func (s *Store) getString(ctx context.Context, key string) string {
	v, err := credentials.NewSQLiteRepository(s.db).Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "error reading credential", "key", key, "error", err)
		return ""
	}
	return string(v)
}
