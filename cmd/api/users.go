package main

import (
	"errors"
	"net/http"

	"eggy/internal/avatars"
	"eggy/internal/identity"
	"eggy/internal/mailer"
	"eggy/internal/store"
)

type createUserPayload struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=5,max=15"`
	Password string `validate:"required"`
	Confirm  string
}

// createUserHandler registers a new account from the signup form.
// Validation failures answer with a plain-text reason, matching what
// the signup page displays inline.
func (app *application) createUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Try Again", http.StatusBadRequest)
		return
	}

	payload := createUserPayload{
		Email:    r.FormValue("email1"),
		Username: r.FormValue("sign2"),
		Password: r.FormValue("pass1"),
		Confirm:  r.FormValue("firstpass"),
	}
	if err := Validate.Struct(payload); err != nil {
		http.Error(w, "Try Again", http.StatusBadRequest)
		return
	}

	user, err := app.identity.Register(r.Context(), payload.Email, payload.Username, payload.Password, payload.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrPasswordMismatch):
			http.Error(w, "Password does not match", http.StatusBadRequest)
		case errors.Is(err, store.ErrDuplicateEmail), errors.Is(err, store.ErrDuplicateUsername):
			http.Error(w, "Duplicate Entry. Try Again.", http.StatusBadRequest)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if app.mailer != nil {
		// Best effort; a failed welcome mail never fails the signup.
		go func() {
			vars := struct{ Username string }{Username: user.Username}
			if err := app.mailer.Send(mailer.WelcomeTemplate, user.Username, user.Email, vars); err != nil {
				app.logger.Errorw("error sending welcome email", "username", user.Username, "error", err)
			}
		}()
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// loginHandler resolves a login attempt and redirects home either way;
// the response never says which of the two fields was wrong.
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, err := app.identity.Authenticate(r.Context(), r.FormValue("userlogin"), r.FormValue("passlogin"))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type updateProfilePayload struct {
	Username    string `validate:"omitempty,min=5,max=15"`
	Email       string `validate:"omitempty,email"`
	Password    string
	Description string
}

type profileResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	User       *store.User `json:"user,omitempty"`
	RedirectTo string      `json:"redirectTo,omitempty"`
}

// updateProfileHandler applies a partial profile update for the
// logged-in user, including an optional avatar upload.
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	login := app.currentLogin()
	if login == nil {
		if err := writeJSON(w, http.StatusForbidden, profileResponse{Success: false, Message: "No user logged in."}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload := updateProfilePayload{
		Username:    r.FormValue("username"),
		Email:       r.FormValue("email"),
		Password:    r.FormValue("password"),
		Description: r.FormValue("description"),
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var patch identity.ProfilePatch
	if payload.Username != "" {
		patch.Username = &payload.Username
	}
	if payload.Email != "" {
		patch.Email = &payload.Email
	}
	if payload.Password != "" {
		patch.Password = &payload.Password
	}
	if payload.Description != "" {
		patch.Description = &payload.Description
	}

	file, header, err := r.FormFile("img")
	switch {
	case err == nil:
		defer file.Close()
		url, err := app.avatars.Save(r.Context(), "img", file, header)
		if err != nil {
			if errors.Is(err, avatars.ErrNotImage) {
				app.badRequestResponse(w, r, err)
				return
			}
			app.internalServerError(w, r, err)
			return
		}
		patch.AvatarImg = &url
	case errors.Is(err, http.ErrMissingFile):
		// no new avatar
	default:
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.identity.UpdateProfile(r.Context(), login.Username, patch)
	if err != nil {
		var resp profileResponse
		var status int
		switch {
		case errors.Is(err, identity.ErrNothingToUpdate):
			status, resp = http.StatusOK, profileResponse{Success: false, Message: "No update information provided"}
		case errors.Is(err, store.ErrNotFound):
			status, resp = http.StatusNotFound, profileResponse{Success: false, Message: "User not found"}
		case errors.Is(err, store.ErrDuplicateEmail), errors.Is(err, store.ErrDuplicateUsername):
			status, resp = http.StatusBadRequest, profileResponse{Success: false, Message: err.Error()}
		default:
			app.internalServerError(w, r, err)
			return
		}
		if err := writeJSON(w, status, resp); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	resp := profileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    user,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteAccountHandler removes the logged-in user's account. The page
// calls it asynchronously, so the redirect target travels in the JSON
// body instead of a Location header.
func (app *application) deleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	err := app.identity.DeleteAccount(r.Context())
	if err != nil {
		var resp profileResponse
		var status int
		switch {
		case errors.Is(err, identity.ErrNotLoggedIn):
			status, resp = http.StatusForbidden, profileResponse{Success: false, Message: "No user logged in."}
		case errors.Is(err, store.ErrNotFound):
			status, resp = http.StatusNotFound, profileResponse{Success: false, Message: "Failed to delete account."}
		default:
			app.internalServerError(w, r, err)
			return
		}
		if err := writeJSON(w, status, resp); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	resp := profileResponse{
		Success:    true,
		Message:    "Account deleted successfully.",
		RedirectTo: "/",
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
