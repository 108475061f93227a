package account

import (
	"errors"
	"net/http"

	"github.com/rs/xid"
)

const (
	sessionCookie = "sid"

	homePath  = "/home"
	loginPath = "/account/login"
)

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// ensureToken returns the request's session token, minting one and
// setting the cookie when the client has none yet.
func ensureToken(w http.ResponseWriter, r *http.Request) string {
	if t := sessionToken(r); t != "" {
		return t
	}
	t := xid.New().String()
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: t, Path: "/", HttpOnly: true})
	return t
}

// CurrentFromRequest reads the session identified by the request's
// cookie; a missing cookie reads as Anonymous.
func (m *SessionManager) CurrentFromRequest(r *http.Request) Session {
	return m.Current(r.Context(), sessionToken(r))
}

func clearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", HttpOnly: true, MaxAge: -1})
}

// RequireAnonymous guards the signup and login entry points: an
// authenticated client is sent home without the flow running.
func RequireAnonymous(sessions *SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessions.Current(r.Context(), sessionToken(r)).Authenticated() {
			http.Redirect(w, r, homePath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuthenticated guards the logout entry point the same way.
func RequireAuthenticated(sessions *SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sessions.Current(r.Context(), sessionToken(r)).Authenticated() {
			http.Redirect(w, r, homePath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func SignupFormHandler(rend Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rend.Render(w, http.StatusOK, SignupPage, PageData{Title: "Sign Up", NotLoggedIn: true})
	})
}

func LoginFormHandler(rend Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rend.Render(w, http.StatusOK, LoginPage, PageData{Title: "Log In", NotLoggedIn: true})
	})
}

func SignupHandler(svc Service, rend Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rend.Render(w, http.StatusBadRequest, SignupPage, PageData{Title: "Sign Up", Error: "bad form submission", UsernameErr: true, NotLoggedIn: true})
			return
		}

		username := Sanitize(r.PostFormValue(FieldUsername))
		req := SignupRequest{
			Username:             username,
			Password:             Sanitize(r.PostFormValue(FieldPassword)),
			PasswordConfirmation: Sanitize(r.PostFormValue(FieldPswRepeat)),
		}

		if err := svc.SignUp(r.Context(), req); err != nil {
			renderFlowError(rend, w, SignupPage, "Sign Up", err, username, "")
			return
		}

		http.Redirect(w, r, loginPath, http.StatusFound)
	})
}

func LoginHandler(svc Service, rend Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			rend.Render(w, http.StatusBadRequest, LoginPage, PageData{Title: "Log In", Error: "bad form submission", UsernameErr: true, NotLoggedIn: true})
			return
		}

		username := Sanitize(r.PostFormValue(FieldUsername))
		password := Sanitize(r.PostFormValue(FieldPassword))

		token := ensureToken(w, r)
		if err := svc.LogIn(r.Context(), token, LoginRequest{Username: username, Password: password}); err != nil {
			renderFlowError(rend, w, LoginPage, "Log In", err, username, password)
			return
		}

		http.Redirect(w, r, homePath, http.StatusFound)
	})
}

func LogoutHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Best effort: the cookie is gone either way, and the guard
		// already established the session exists.
		_ = svc.LogOut(r.Context(), sessionToken(r))
		clearToken(w)
		http.Redirect(w, r, homePath, http.StatusFound)
	})
}

// renderFlowError maps a flow error onto the re-render contract:
// username failures mark the username control, password failures mark
// the password controls and echo the username (and, on login, the
// attempted password), store results mark dbErr. Store faults are the
// only 500s.
func renderFlowError(rend Renderer, w http.ResponseWriter, page Page, title string, err error, username, password string) {
	fe := &FlowError{Kind: KindStoreUnavailable, Msg: "something went wrong"}
	errors.As(err, &fe)

	data := PageData{Title: title, Error: fe.Msg, NotLoggedIn: true}
	status := http.StatusBadRequest

	switch fe.Kind {
	case KindInvalidInput, KindTooShort, KindMismatch:
		if fe.Field == FieldUsername {
			data.UsernameErr = true
		} else {
			data.PswErr = true
			data.Username = username
			data.Password = password
		}
	case KindAuthFailure:
		data.DBErr = true
		data.Username = username
	default:
		status = http.StatusInternalServerError
		data.DBErr = true
		data.Username = username
	}

	rend.Render(w, status, page, data)
}
