package account

import "context"

type service struct {
	accounts Accounts
	sessions *SessionManager
}

func NewService(accounts Accounts, sessions *SessionManager) Service {
	return &service{accounts: accounts, sessions: sessions}
}

// SignUp validates the request and creates the account. It never
// touches the session; a fresh user still has to log in.
func (svc *service) SignUp(ctx context.Context, req SignupRequest) error {
	username, err := ValidateUsername(req.Username)
	if err != nil {
		return err
	}

	password, err := ValidatePassword(req.Password)
	if err != nil {
		return err
	}
	confirm, err := ValidateRequiredText(FieldPswRepeat, req.PasswordConfirmation)
	if err != nil {
		return err
	}
	if err := ValidatePasswordsMatch(password, confirm); err != nil {
		return err
	}

	// Sanitized once more before the write leaves the gateway.
	if err := svc.accounts.CreateAccount(ctx, Sanitize(username), Sanitize(password)); err != nil {
		return &FlowError{Kind: KindStoreUnavailable, Field: FieldUsername, Msg: "could not create account", Err: err}
	}

	return nil
}

// LogIn validates the request, checks the credentials against the
// store and, on a match, establishes the session in one atomic write
// before returning.
func (svc *service) LogIn(ctx context.Context, token string, req LoginRequest) error {
	username, err := ValidateUsername(req.Username)
	if err != nil {
		return err
	}

	password, err := ValidatePassword(req.Password)
	if err != nil {
		return err
	}

	canonical, err := svc.accounts.Authenticate(ctx, Sanitize(username), Sanitize(password))
	if err != nil {
		return &FlowError{Kind: KindStoreUnavailable, Field: FieldUsername, Msg: "could not log in", Err: err}
	}
	if canonical == "" {
		// Deliberately silent on whether the username exists.
		return &FlowError{Kind: KindAuthFailure, Field: FieldUsername, Msg: "could not log in"}
	}

	admin, err := svc.accounts.IsAdministrator(ctx, canonical)
	if err != nil {
		return &FlowError{Kind: KindStoreUnavailable, Field: FieldUsername, Msg: "could not log in", Err: err}
	}

	if err := svc.sessions.Establish(ctx, token, canonical, admin); err != nil {
		return &FlowError{Kind: KindStoreUnavailable, Field: FieldUsername, Msg: "could not log in", Err: err}
	}

	return nil
}

func (svc *service) LogOut(ctx context.Context, token string) error {
	return svc.sessions.Destroy(ctx, token)
}
