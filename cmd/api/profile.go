package main

import (
	"errors"
	"net/http"

	"eggy/internal/session"
	"eggy/internal/store"
	"eggy/internal/view"

	"golang.org/x/sync/errgroup"
)

type profilePage struct {
	Title       string
	Login       *session.Login
	User        *store.User
	Comments    []view.Comment
	Restaurants []view.Restaurant
}

// userProfileHandler renders the profile page for the logged-in user.
// The user record, their comments and the restaurant list are
// independent queries, so they are fetched concurrently and joined
// before rendering.
func (app *application) userProfileHandler(w http.ResponseWriter, r *http.Request) {
	login := app.currentLogin()
	if login == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var (
		user        *store.User
		comments    []store.Comment
		restaurants []store.Restaurant
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		user, err = app.store.Users.GetByUsername(ctx, login.Username)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = app.store.Comments.ListByAuthor(ctx, login.Username)
		return err
	})
	g.Go(func() error {
		var err error
		restaurants, err = app.store.Restaurants.List(ctx, store.EstablishmentFilter{})
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Stale session: the account behind it no longer exists.
			app.sessions.Clear()
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "profile.html", profilePage{
		Title:       "User Profile",
		Login:       login,
		User:        user,
		Comments:    view.DecorateProfileComments(comments),
		Restaurants: view.DecorateRestaurants(restaurants),
	})
}
