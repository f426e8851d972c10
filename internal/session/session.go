// Package session keeps the logged-in username in an HMAC-signed cookie.
// There is no server-side store: the cookie is the session.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret    = errors.New("session secret is empty")
	ErrEmptyUsername  = errors.New("session username is empty")
	ErrInvalidSession = errors.New("invalid session")
)

const defaultCookieName = "session"

// Options configure a Manager.
type Options struct {
	Secret     string
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// Claims carried inside the cookie.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Manager issues, reads and clears session cookies.
type Manager struct {
	key        []byte
	cookieName string
	maxAge     time.Duration
	secure     bool
	now        func() time.Time
}

func NewManager(opts Options) (*Manager, error) {
	if strings.TrimSpace(opts.Secret) == "" {
		return nil, ErrEmptySecret
	}
	name := opts.CookieName
	if name == "" {
		name = defaultCookieName
	}
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &Manager{
		key:        []byte(opts.Secret),
		cookieName: name,
		maxAge:     maxAge,
		secure:     opts.Secure,
		now:        time.Now,
	}, nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string { return m.cookieName }

// Issue returns a signed token for username.
func (m *Manager) Issue(username string) (string, error) {
	if username == "" {
		return "", ErrEmptyUsername
	}
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	})
	return token.SignedString(m.key)
}

// Parse verifies a token and returns the username it carries.
func (m *Manager) Parse(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.key, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return "", ErrInvalidSession
	}
	return claims.Username, nil
}

// Establish writes the session cookie for username.
func (m *Manager) Establish(w http.ResponseWriter, username string) error {
	token, err := m.Issue(username)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Username returns the session identity of r. A missing, tampered or
// expired cookie yields ok=false.
func (m *Manager) Username(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	username, err := m.Parse(c.Value)
	if err != nil {
		return "", false
	}
	return username, true
}

// Clear expires the session cookie. Safe to call without a session.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
