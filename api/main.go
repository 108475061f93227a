package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"

	"github.com/jideolan/scribble"
	"github.com/jideolan/scribble/account"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := scribble.NewUserRepository()
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		db, release, err := scribble.Dial(ctx, uri, envOr("MONGODB_DB", "scribble"))
		if err != nil {
			log.Fatal(err)
		}
		defer release(context.Background())
		users = scribble.NewMongoUserRepository(db.Collection("users"))
	} else {
		log.Println("MONGODB_URI not set, using in-memory user store")
	}

	store := account.NewMemorySessionStore()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal(err)
		}
		store = account.NewRedisSessionStore(client, sessionTTL())
	}
	sessions := account.NewSessionManager(store)

	svc := account.NewService(scribble.NewAccountStore(users), sessions)
	rend, err := scribble.NewTemplateRenderer()
	if err != nil {
		log.Fatal(err)
	}

	router := httprouter.New()
	router.Handler(http.MethodGet, "/account/signup", account.RequireAnonymous(sessions, account.SignupFormHandler(rend)))
	router.Handler(http.MethodPost, "/account/signup", account.RequireAnonymous(sessions, account.SignupHandler(svc, rend)))
	router.Handler(http.MethodGet, "/account/login", account.RequireAnonymous(sessions, account.LoginFormHandler(rend)))
	router.Handler(http.MethodPost, "/account/login", account.RequireAnonymous(sessions, account.LoginHandler(svc, rend)))
	router.Handler(http.MethodGet, "/account/logout", account.RequireAuthenticated(sessions, account.LogoutHandler(svc)))
	router.Handler(http.MethodGet, "/home", homeHandler(sessions, rend))
	router.Handler(http.MethodGet, "/", http.RedirectHandler("/home", http.StatusFound))

	addr := envOr("ADDR", ":8080")
	log.Printf("Server started. Listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

func homeHandler(sessions *account.SessionManager, rend account.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.CurrentFromRequest(r)
		rend.Render(w, http.StatusOK, account.HomePage, account.PageData{
			Title:       "Home",
			Username:    sess.Username,
			Admin:       sess.Admin,
			NotLoggedIn: !sess.Authenticated(),
		})
	})
}

func sessionTTL() time.Duration {
	ttl, err := time.ParseDuration(envOr("SESSION_TTL", "24h"))
	if err != nil {
		log.Fatalf("invalid SESSION_TTL: %v", err)
	}
	return ttl
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
