package main

import (
	"context"
	"html/template"
	"time"

	"eggy/internal/identity"
	"eggy/internal/session"
	"eggy/internal/store"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// In-memory stand-ins for the storage layer so handlers can be
// exercised without a database.

type fakeRestaurants struct {
	list       []store.Restaurant
	lastFilter store.EstablishmentFilter
}

func (f *fakeRestaurants) List(_ context.Context, filter store.EstablishmentFilter) ([]store.Restaurant, error) {
	f.lastFilter = filter
	return f.list, nil
}

type fakeComments struct {
	byResto   map[string][]store.Comment
	byAuthor  map[string][]store.Comment
	requested []string // restaurant names passed to ListForRestaurant, in order
}

func (f *fakeComments) ListForRestaurant(_ context.Context, restoName string) ([]store.Comment, error) {
	f.requested = append(f.requested, restoName)
	return f.byResto[restoName], nil
}

func (f *fakeComments) ListByAuthor(_ context.Context, author string) ([]store.Comment, error) {
	return f.byAuthor[author], nil
}

type fakeUsers struct {
	users map[string]*store.User
}

func (f *fakeUsers) Create(_ context.Context, user *store.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return store.ErrDuplicateUsername
		}
	}
	user.ID = int64(len(f.users) + 1)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*store.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Update(_ context.Context, username string, patch store.UserPatch) (*store.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Username != nil {
		delete(f.users, username)
		u.Username = *patch.Username
		f.users[u.Username] = u
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = patch.PasswordHash
	}
	if patch.AvatarImg != nil {
		u.AvatarImg = *patch.AvatarImg
	}
	if patch.Description != nil {
		u.Description = *patch.Description
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Delete(_ context.Context, username string) error {
	if _, ok := f.users[username]; !ok {
		return store.ErrNotFound
	}
	delete(f.users, username)
	return nil
}

// Minimal templates: handler tests only assert which template was
// selected, not the markup.
var testTemplates = template.Must(template.New("test").Parse(`{{define "home.html"}}HOME{{end}}
{{define "establishments.html"}}FULL{{end}}
{{define "establishment_rows"}}ROWS{{end}}
{{define "profile.html"}}PROFILE{{end}}`))

func newTestApp() (*application, *fakeRestaurants, *fakeComments, *fakeUsers) {
	restaurants := &fakeRestaurants{}
	comments := &fakeComments{byResto: map[string][]store.Comment{}, byAuthor: map[string][]store.Comment{}}
	users := &fakeUsers{users: map[string]*store.User{}}
	sessions := session.NewSlot()

	app := &application{
		config: config{env: "test"},
		store: store.Storage{
			Restaurants: restaurants,
			Comments:    comments,
			Users:       users,
		},
		identity:  identity.NewService(users, sessions, bcrypt.MinCost),
		sessions:  sessions,
		templates: testTemplates,
		logger:    zap.NewNop().Sugar(),
	}
	return app, restaurants, comments, users
}
