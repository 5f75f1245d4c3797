package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDuplicateEmail    = errors.New("a user with that email already exists")
	ErrDuplicateUsername = errors.New("a user with that username already exists")
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	AvatarImg    string    `json:"avatar_img"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch carries a partial profile update. Nil fields are left
// untouched; PasswordHash must already be hashed by the caller.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash []byte
	AvatarImg    *string
	Description  *string
}

func (p UserPatch) Empty() bool {
	return p.Username == nil &&
		p.Email == nil &&
		p.PasswordHash == nil &&
		p.AvatarImg == nil &&
		p.Description == nil
}

type UsersStore struct {
	db *pgxpool.Pool
}

func (s *UsersStore) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (username, email, password, avatar_img, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRow(
		ctx, query, user.Username, user.Email, user.PasswordHash, user.AvatarImg, user.Description,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return mapConstraintErr(err)
	}
	return nil
}

func (s *UsersStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, email, password, avatar_img, description, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var user User
	err := s.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.AvatarImg,
		&user.Description,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil patch fields to the named user and
// returns the updated record. Callers must reject an empty patch
// before getting here.
func (s *UsersStore) Update(ctx context.Context, username string, patch UserPatch) (*User, error) {
	setClauses := []string{}
	args := []any{}

	addClause := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Username != nil {
		addClause("username", *patch.Username)
	}
	if patch.Email != nil {
		addClause("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		addClause("password", patch.PasswordHash)
	}
	if patch.AvatarImg != nil {
		addClause("avatar_img", *patch.AvatarImg)
	}
	if patch.Description != nil {
		addClause("description", *patch.Description)
	}
	if len(setClauses) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, username)
	query := fmt.Sprintf(`
		UPDATE users SET %s, updated_at = NOW()
		WHERE username = $%d
		RETURNING id, username, email, password, avatar_img, description, created_at, updated_at
	`, strings.Join(setClauses, ", "), len(args))

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var user User
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.AvatarImg,
		&user.Description,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, mapConstraintErr(err)
	}
	return &user, nil
}

func (s *UsersStore) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, query, username)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// mapConstraintErr translates unique-violation errors on the users
// table into the duplicate sentinels.
func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return ErrDuplicateEmail
		case "users_username_key":
			return ErrDuplicateUsername
		}
	}
	return err
}
