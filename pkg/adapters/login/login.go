package login

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/lexportal/lexmark/pkg/config"
)

// TokenSaver persists the bearer token obtained by the login flow.
type TokenSaver interface {
	SaveToken(ctx context.Context, token string) error
}

// Flow runs the portal's OAuth2 authorization-code login from the
// terminal: it prints the authorization URL, catches the redirect on a
// localhost callback server, exchanges the code, and saves the token.
type Flow struct {
	oauthConfig *oauth2.Config
	saver       TokenSaver
}

func NewFlow(cfg *config.Config, saver TokenSaver) *Flow {
	return &Flow{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"bookmarks", "notes"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
		saver: saver,
	}
}

type callbackResult struct {
	code string
	err  error
}

// Run executes the login flow and blocks until the callback arrives, the
// context is cancelled, or the timeout elapses.
func (f *Flow) Run(ctx context.Context) error {
	state, err := generateState()
	if err != nil {
		return err
	}

	redirect, err := url.Parse(f.oauthConfig.RedirectURL)
	if err != nil {
		return fmt.Errorf("invalid redirect URL: %w", err)
	}

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return fmt.Errorf("start callback listener: %w", err)
	}

	results := make(chan callbackResult, 1)
	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("state") != state {
			http.Error(w, "invalid oauth state", http.StatusBadRequest)
			results <- callbackResult{err: fmt.Errorf("oauth state mismatch")}
			return
		}
		code := r.FormValue("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			results <- callbackResult{err: fmt.Errorf("callback missing code")}
			return
		}
		fmt.Fprintln(w, "Login complete. You can close this tab and return to the terminal.")
		results <- callbackResult{code: code}
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			results <- callbackResult{err: err}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	authURL := f.oauthConfig.AuthCodeURL(state)
	fmt.Println("Open the following URL in your browser to sign in:")
	fmt.Println("  " + authURL)

	var result callbackResult
	select {
	case result = <-results:
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("login timed out waiting for the browser callback")
	}
	if result.err != nil {
		return result.err
	}

	token, err := f.oauthConfig.Exchange(ctx, result.code)
	if err != nil {
		return fmt.Errorf("code exchange failed: %w", err)
	}

	if err := f.saver.SaveToken(ctx, token.AccessToken); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	log.Printf("Login successful")
	return nil
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
