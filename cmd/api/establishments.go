package main

import (
	"net/http"
	"strconv"

	"eggy/internal/session"
	"eggy/internal/store"
	"eggy/internal/view"
)

type establishmentsPage struct {
	Title string
	Login *session.Login
	Rows  view.Rows
}

// establishmentsHandler lists restaurants matching the stars/query
// filter, split into three display rows. Requests marked as
// XMLHttpRequest get just the rows fragment for an in-place refresh;
// plain navigations get the full page.
func (app *application) establishmentsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.EstablishmentFilter{Query: q.Get("query")}
	for _, s := range q["stars"] {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Stars = append(filter.Stars, n)
		}
	}

	restaurants, err := app.store.Restaurants.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	data := establishmentsPage{
		Title: "View Establishments",
		Login: app.currentLogin(),
		Rows:  view.PartitionRows(restaurants),
	}

	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		app.render(w, r, http.StatusOK, "establishment_rows", data)
		return
	}
	app.render(w, r, http.StatusOK, "establishments.html", data)
}
