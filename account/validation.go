package account

import "strings"

// Field names match the form controls of the signup, login and
// profile pages.
const (
	FieldUsername  = "username"
	FieldPassword  = "psw"
	FieldPswRepeat = "pswRepeat"
	FieldWebsite   = "website"
)

const (
	minUsernameLen = 2
	minPasswordLen = 8
)

// ValidateRequiredText rejects missing or blank input and returns the
// trimmed value.
func ValidateRequiredText(field, s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", &FlowError{Kind: KindInvalidInput, Field: field, Msg: field + " was not provided"}
	}
	return t, nil
}

func ValidateUsername(s string) (string, error) {
	u, err := ValidateRequiredText(FieldUsername, s)
	if err != nil {
		return "", err
	}
	if len(u) < minUsernameLen {
		return "", &FlowError{Kind: KindTooShort, Field: FieldUsername, Msg: "username must have at least two characters"}
	}
	return u, nil
}

func ValidatePassword(s string) (string, error) {
	p, err := ValidateRequiredText(FieldPassword, s)
	if err != nil {
		return "", err
	}
	if len(p) < minPasswordLen {
		return "", &FlowError{Kind: KindTooShort, Field: FieldPassword, Msg: "password must have at least eight characters"}
	}
	return p, nil
}

func ValidatePasswordsMatch(p1, p2 string) error {
	if p1 != p2 {
		return &FlowError{Kind: KindMismatch, Field: FieldPswRepeat, Msg: "password and confirm password fields must match"}
	}
	return nil
}

const websiteSuffix = ".com"

// ValidateWebsiteURL checks the fixed shape the profile store-link
// form accepts: an http(s)://www. prefix, a .com suffix and at least
// two characters in between. Deliberately not a general URL parser.
func ValidateWebsiteURL(s string) (string, error) {
	site, err := ValidateRequiredText(FieldWebsite, s)
	if err != nil {
		return "", err
	}

	var host string
	switch {
	case strings.HasPrefix(site, "https://www."):
		host = strings.TrimPrefix(site, "https://www.")
	case strings.HasPrefix(site, "http://www."):
		host = strings.TrimPrefix(site, "http://www.")
	default:
		return "", &FlowError{Kind: KindInvalidInput, Field: FieldWebsite, Msg: "invalid website"}
	}

	if !strings.HasSuffix(host, websiteSuffix) {
		return "", &FlowError{Kind: KindInvalidInput, Field: FieldWebsite, Msg: "invalid website"}
	}
	if len(strings.TrimSuffix(host, websiteSuffix)) < 2 {
		return "", &FlowError{Kind: KindInvalidInput, Field: FieldWebsite, Msg: "invalid website"}
	}

	return site, nil
}
