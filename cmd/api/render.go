package main

import (
	"bytes"
	"net/http"

	"eggy/internal/session"
)

// render executes a named template into a buffer first so a template
// failure still produces a clean 500 instead of a torn page.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	buf := new(bytes.Buffer)
	if err := app.templates.ExecuteTemplate(buf, name, data); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// currentLogin returns the active login for template personalization,
// nil when nobody is logged in.
func (app *application) currentLogin() *session.Login {
	if login, ok := app.sessions.Current(); ok {
		return &login
	}
	return nil
}
