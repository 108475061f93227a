package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rendererSpy records what the handler asked the presentation layer to
// draw.
type rendererSpy struct {
	page Page
	data PageData
}

func (r *rendererSpy) Render(w http.ResponseWriter, status int, page Page, data PageData) {
	r.page = page
	r.data = data
	w.WriteHeader(status)
}

func postForm(handler http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestRouteGuards(t *testing.T) {
	ctx := context.Background()
	spy := &accountsSpy{}
	svc, sessions := newTestService(spy)
	rend := &rendererSpy{}

	assert.NoError(t, sessions.Establish(ctx, "t1", "alice", false))
	authed := &http.Cookie{Name: sessionCookie, Value: "t1"}

	guarded := []struct {
		name    string
		handler http.Handler
		method  string
		path    string
	}{
		{"signup form", RequireAnonymous(sessions, SignupFormHandler(rend)), http.MethodGet, "/account/signup"},
		{"signup submit", RequireAnonymous(sessions, SignupHandler(svc, rend)), http.MethodPost, "/account/signup"},
		{"login form", RequireAnonymous(sessions, LoginFormHandler(rend)), http.MethodGet, "/account/login"},
		{"login submit", RequireAnonymous(sessions, LoginHandler(svc, rend)), http.MethodPost, "/account/login"},
	}

	for _, tt := range guarded {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.path, strings.NewReader("username=ab&psw=longenough1"))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			r.AddCookie(authed)
			w := httptest.NewRecorder()
			tt.handler.ServeHTTP(w, r)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, homePath, w.Header().Get("Location"))
		})
	}

	// The flow bodies never ran: the store client saw zero calls.
	assert.Zero(t, spy.calls())

	t.Run("logout while anonymous", func(t *testing.T) {
		h := RequireAuthenticated(sessions, LogoutHandler(svc))
		r := httptest.NewRequest(http.MethodGet, "/account/logout", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, homePath, w.Header().Get("Location"))
	})
}

func TestSignupHandler(t *testing.T) {
	t.Run("valid submission redirects to login", func(t *testing.T) {
		spy := &accountsSpy{}
		svc, _ := newTestService(spy)
		rend := &rendererSpy{}

		w := postForm(SignupHandler(svc, rend), "/account/signup", url.Values{
			"username":  {"ab"},
			"psw":       {"longenough1"},
			"pswRepeat": {"longenough1"},
		}, nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, loginPath, w.Header().Get("Location"))
		assert.Equal(t, 1, spy.createCalls)
		assert.Equal(t, "ab", spy.createdUsername)
	})

	t.Run("bad username marks the username control", func(t *testing.T) {
		spy := &accountsSpy{}
		svc, _ := newTestService(spy)
		rend := &rendererSpy{}

		w := postForm(SignupHandler(svc, rend), "/account/signup", url.Values{
			"username":  {"a"},
			"psw":       {"longenough1"},
			"pswRepeat": {"longenough1"},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, SignupPage, rend.page)
		assert.True(t, rend.data.UsernameErr)
		assert.False(t, rend.data.PswErr)
		assert.Zero(t, spy.calls())
	})

	t.Run("mismatched confirmation marks the password controls", func(t *testing.T) {
		spy := &accountsSpy{}
		svc, _ := newTestService(spy)
		rend := &rendererSpy{}

		w := postForm(SignupHandler(svc, rend), "/account/signup", url.Values{
			"username":  {"ab"},
			"psw":       {"longenough1"},
			"pswRepeat": {"different11"},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, rend.data.PswErr)
		assert.Equal(t, "ab", rend.data.Username, "form repopulates the username")
		assert.Empty(t, rend.data.Password, "signup never echoes the password")
		assert.Zero(t, spy.calls())
	})

	t.Run("store failure renders a server error", func(t *testing.T) {
		spy := &accountsSpy{createErr: assert.AnError}
		svc, _ := newTestService(spy)
		rend := &rendererSpy{}

		w := postForm(SignupHandler(svc, rend), "/account/signup", url.Values{
			"username":  {"ab"},
			"psw":       {"longenough1"},
			"pswRepeat": {"longenough1"},
		}, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.True(t, rend.data.DBErr)
		assert.Equal(t, "ab", rend.data.Username)
		assert.NotContains(t, rend.data.Error, assert.AnError.Error())
	})
}

func TestLoginHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials establish the session and redirect home", func(t *testing.T) {
		spy := &accountsSpy{canonical: "alice", admin: true}
		svc, sessions := newTestService(spy)
		rend := &rendererSpy{}

		w := postForm(LoginHandler(svc, rend), "/account/login", url.Values{
			"username": {"alice"},
			"psw":      {"longenough1"},
		}, nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, homePath, w.Header().Get("Location"))

		c := sessionCookieFrom(t, w)
		assert.True(t, c.HttpOnly)
		sess := sessions.Current(ctx, c.Value)
		assert.Equal(t, "alice", sess.Username)
		assert.True(t, sess.Admin)
	})

	t.Run("short password echoes username and password", func(t *testing.T) {
		spy := &accountsSpy{}
		svc, _ := newTestService(spy)
		rend := &rendererSpy{}

		w := postForm(LoginHandler(svc, rend), "/account/login", url.Values{
			"username": {"alice"},
			"psw":      {"short"},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, LoginPage, rend.page)
		assert.True(t, rend.data.PswErr)
		assert.Equal(t, "alice", rend.data.Username)
		assert.Equal(t, "short", rend.data.Password)
		assert.Zero(t, spy.calls())
	})

	t.Run("wrong credentials render a generic failure", func(t *testing.T) {
		spy := &accountsSpy{canonical: ""}
		svc, sessions := newTestService(spy)
		rend := &rendererSpy{}

		w := postForm(LoginHandler(svc, rend), "/account/login", url.Values{
			"username": {"alice"},
			"psw":      {"wrongpassword"},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, rend.data.DBErr)
		assert.Equal(t, "alice", rend.data.Username)
		assert.Empty(t, rend.data.Password)

		c := sessionCookieFrom(t, w)
		assert.False(t, sessions.Current(ctx, c.Value).Authenticated())
	})

	t.Run("store fault renders a server error", func(t *testing.T) {
		spy := &accountsSpy{authErr: assert.AnError}
		svc, _ := newTestService(spy)
		rend := &rendererSpy{}

		w := postForm(LoginHandler(svc, rend), "/account/login", url.Values{
			"username": {"alice"},
			"psw":      {"longenough1"},
		}, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.True(t, rend.data.DBErr)
	})
}

func TestLogoutHandler(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestService(&accountsSpy{})

	assert.NoError(t, sessions.Establish(ctx, "t1", "alice", false))

	r := httptest.NewRequest(http.MethodGet, "/account/logout", nil)
	r.AddCookie(&http.Cookie{Name: sessionCookie, Value: "t1"})
	w := httptest.NewRecorder()
	LogoutHandler(svc).ServeHTTP(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, homePath, w.Header().Get("Location"))
	assert.False(t, sessions.Current(ctx, "t1").Authenticated())

	c := sessionCookieFrom(t, w)
	assert.Equal(t, -1, c.MaxAge, "cookie is expired")
}
