package account

import (
	"context"
	"net/http"
)

// Accounts is the store client behind the gateway. It owns user
// records, password verification and the admin flag; the gateway only
// sees the results below.
type Accounts interface {
	// CreateAccount fails when the username is taken or the store is
	// unavailable.
	CreateAccount(ctx context.Context, username, password string) error
	// Authenticate returns the canonical username for matching
	// credentials and "" when nothing matches. A non-nil error means
	// the store call itself failed.
	Authenticate(ctx context.Context, username, password string) (string, error)
	IsAdministrator(ctx context.Context, username string) (bool, error)
}

// Service runs the three gateway flows. The token identifies the
// caller's session context.
type Service interface {
	SignUp(ctx context.Context, req SignupRequest) error
	LogIn(ctx context.Context, token string, req LoginRequest) error
	LogOut(ctx context.Context, token string) error
}

type SignupRequest struct {
	Username, Password, PasswordConfirmation string
}

type LoginRequest struct {
	Username, Password string
}

type Page string

const (
	SignupPage Page = "signup"
	LoginPage  Page = "login"
	HomePage   Page = "home"
)

// PageData is the template contract shared with the presentation
// layer. Exactly one of the three *Err markers is set on a failed
// flow so the form can highlight the offending control.
type PageData struct {
	Title       string
	Error       string
	UsernameErr bool
	PswErr      bool
	DBErr       bool
	Username    string
	Password    string
	Admin       bool
	NotLoggedIn bool
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page Page, data PageData)
}
