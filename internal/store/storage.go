package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Restaurants interface {
		List(context.Context, EstablishmentFilter) ([]Restaurant, error)
	}
	Comments interface {
		ListForRestaurant(context.Context, string) ([]Comment, error)
		ListByAuthor(context.Context, string) ([]Comment, error)
	}
	Users interface {
		Create(context.Context, *User) error
		GetByUsername(context.Context, string) (*User, error)
		Update(context.Context, string, UserPatch) (*User, error)
		Delete(context.Context, string) error
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Restaurants: &RestaurantsStore{db},
		Comments:    &CommentsStore{db},
		Users:       &UsersStore{db},
	}
}
