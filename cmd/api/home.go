package main

import (
	"fmt"
	"net/http"
	"strconv"

	"eggy/internal/session"
	"eggy/internal/store"
	"eggy/internal/view"
)

// carouselSize caps how many restaurants the home carousel steps through.
const carouselSize = 5

type homePage struct {
	Title       string
	Login       *session.Login
	Restaurants []store.Restaurant
	Comments    []view.Comment
}

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	app.renderHome(w, r)
}

func (app *application) renderHome(w http.ResponseWriter, r *http.Request) {
	restaurants, err := app.store.Restaurants.List(r.Context(), store.EstablishmentFilter{})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// The home page shows comments for the first restaurant only; the
	// carousel endpoint swaps them in as the visitor steps through.
	var comments []store.Comment
	if len(restaurants) > 0 {
		comments, err = app.store.Comments.ListForRestaurant(r.Context(), restaurants[0].Name)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
	}

	app.render(w, r, http.StatusOK, "home.html", homePage{
		Title:       "My Home page",
		Login:       app.currentLogin(),
		Restaurants: restaurants,
		Comments:    view.DecorateComments(comments),
	})
}

type carouselResponse struct {
	Index       int            `json:"index"`
	URL         string         `json:"url"`
	Title       string         `json:"title"`
	CommentData []view.Comment `json:"commentData"`
}

// carouselHandler steps the home carousel: given a position into the
// ordered restaurant list it returns that restaurant's picture, name
// and decorated comments.
func (app *application) carouselHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	index, err := strconv.Atoi(r.FormValue("input"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid carousel index %q", r.FormValue("input")))
		return
	}

	restaurants, err := app.store.Restaurants.List(r.Context(), store.EstablishmentFilter{})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if len(restaurants) > carouselSize {
		restaurants = restaurants[:carouselSize]
	}
	if index < 0 || index >= len(restaurants) {
		app.badRequestResponse(w, r, fmt.Errorf("carousel index %d out of range", index))
		return
	}

	resto := restaurants[index]
	comments, err := app.store.Comments.ListForRestaurant(r.Context(), resto.Name)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp := carouselResponse{
		Index:       index,
		URL:         resto.Picture,
		Title:       resto.Name,
		CommentData: view.DecorateComments(comments),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	app.identity.Logout()
	app.renderHome(w, r)
}
