package store

import (
	"context"
	"fmt"
	"time"

	"github.com/bornholm/rentacar/internal/authn"
	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var (
	ErrNotFound = errors.New("not found")
)

var userMigrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,

		subject TEXT NOT NULL,
		provider TEXT NOT NULL,

		nickname TEXT NOT NULL DEFAULT '',
		full_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',

		is_owner BOOLEAN NOT NULL DEFAULT 0,
		owner_since INTEGER,

		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		connected_at INTEGER,

		UNIQUE (subject, provider)
	);`,
}

const userAttributes = `id, subject, provider, nickname, full_name, email, is_owner, owner_since, created_at, updated_at, connected_at`

type User struct {
	ID int64

	Provider string
	Subject  string

	Nickname string
	FullName string
	Email    string

	IsOwner    bool
	OwnerSince time.Time

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConnectedAt time.Time
}

// UserProvider implements authn.User.
func (u *User) UserProvider() string {
	return u.Provider
}

// UserSubject implements authn.User.
func (u *User) UserSubject() string {
	return u.Subject
}

var _ authn.User = &User{}

func (s *Store) FindOrCreateUser(ctx context.Context, subject, provider string) (*User, error) {
	var user *User
	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM users WHERE subject = ? AND provider = ? LIMIT 1`, userAttributes)
		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, provider},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				bindUser(stmt, user)
				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if user != nil {
			return nil
		}

		query = fmt.Sprintf(`
			INSERT INTO users
				(subject, provider, created_at, updated_at)
			VALUES (?, ?, ?, ?) RETURNING %s;`,
			userAttributes,
		)

		now := time.Now().UTC().Unix()

		err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, provider, now, now},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				bindUser(stmt, user)
				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*User, error) {
	var user *User
	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM users WHERE id = ? LIMIT 1`, userAttributes)
		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				bindUser(stmt, user)
				return nil
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if user == nil {
		return nil, errors.WithStack(ErrNotFound)
	}

	return user, nil
}

// UpdateProfile refreshes the identity attributes of the user and marks it
// as connected.
func (s *Store) UpdateProfile(ctx context.Context, id int64, nickname, fullName, email string) (*User, error) {
	var user *User
	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		now := time.Now().UTC().Unix()
		query := fmt.Sprintf(`
			UPDATE users SET
				nickname = ?, full_name = ?, email = ?, updated_at = ?, connected_at = ?
			WHERE id = ? RETURNING %s`,
			userAttributes,
		)

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{nickname, fullName, email, now, now, id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				bindUser(stmt, user)
				return nil
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if user == nil {
		return nil, errors.WithStack(ErrNotFound)
	}

	return user, nil
}

// SetOwner updates the owner role of the user. The owner_since timestamp is
// kept when the user already is an owner.
func (s *Store) SetOwner(ctx context.Context, id int64, isOwner bool) (*User, error) {
	var user *User
	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		now := time.Now().UTC().Unix()
		query := fmt.Sprintf(`
			UPDATE users SET
				owner_since = CASE
					WHEN ? = 0 THEN NULL
					WHEN is_owner THEN owner_since
					ELSE ?
				END,
				is_owner = ?,
				updated_at = ?
			WHERE id = ? RETURNING %s`,
			userAttributes,
		)

		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{isOwner, now, isOwner, now, id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				user = &User{}
				bindUser(stmt, user)
				return nil
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if user == nil {
		return nil, errors.WithStack(ErrNotFound)
	}

	return user, nil
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (s *Store) CountOwners(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM users WHERE is_owner`)
}

func (s *Store) count(ctx context.Context, query string) (int64, error) {
	var count int64
	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt64(0)
				return nil
			},
		}))
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

func bindUser(stmt *sqlite.Stmt, user *User) {
	user.ID = stmt.ColumnInt64(0)
	user.Subject = stmt.ColumnText(1)
	user.Provider = stmt.ColumnText(2)
	user.Nickname = stmt.ColumnText(3)
	user.FullName = stmt.ColumnText(4)
	user.Email = stmt.ColumnText(5)
	user.IsOwner = stmt.ColumnBool(6)
	user.OwnerSince = columnTime(stmt, 7)
	user.CreatedAt = columnTime(stmt, 8)
	user.UpdatedAt = columnTime(stmt, 9)
	user.ConnectedAt = columnTime(stmt, 10)
}

func columnTime(stmt *sqlite.Stmt, col int) time.Time {
	if stmt.ColumnType(col) == sqlite.TypeNull {
		return time.Time{}
	}

	return time.Unix(stmt.ColumnInt64(col), 0).UTC()
}
