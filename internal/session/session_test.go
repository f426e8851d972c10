package session

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "why so serious ?"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Options{Secret: testSecret, MaxAge: time.Hour})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestNewManager_RequiresSecret(t *testing.T) {
	if _, err := NewManager(Options{Secret: "  "}); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestManager_IssueAndParse(t *testing.T) {
	m := newTestManager(t)
	tok, err := m.Issue("bob")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	got, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != "bob" {
		t.Fatalf("got %q, want bob", got)
	}
}

func TestManager_IssueEmptyUsername(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Issue(""); !errors.Is(err, ErrEmptyUsername) {
		t.Fatalf("expected ErrEmptyUsername, got %v", err)
	}
}

func TestManager_ParseRejectsOtherKey(t *testing.T) {
	m := newTestManager(t)
	other, _ := NewManager(Options{Secret: "different-key"})
	tok, _ := other.Issue("mallory")

	if _, err := m.Parse(tok); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestManager_ParseRejectsExpired(t *testing.T) {
	m := newTestManager(t)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := m.Issue("bob")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	m.now = time.Now

	if _, err := m.Parse(tok); err == nil {
		t.Fatalf("expected error for expired session")
	}
}

func TestManager_ParseRejectsMalformed(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Parse("not-a-jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestManager_ParseRejectsNonHMAC(t *testing.T) {
	m := newTestManager(t)
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey: %v", err)
	}
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: "bob",
	})
	s, err := tk.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := m.Parse(s); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}

func TestManager_CookieRoundTrip(t *testing.T) {
	m := newTestManager(t)

	w := httptest.NewRecorder()
	if err := m.Establish(w, "bob"); err != nil {
		t.Fatalf("Establish: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "session" || !c.HttpOnly || c.MaxAge != 3600 {
		t.Fatalf("unexpected cookie attributes: %+v", c)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	user, ok := m.Username(req)
	if !ok || user != "bob" {
		t.Fatalf("Username() = %q, %v", user, ok)
	}
}

func TestManager_UsernameWithoutOrTamperedCookie(t *testing.T) {
	m := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := m.Username(req); ok {
		t.Fatalf("expected anonymous request")
	}

	tok, _ := m.Issue("bob")
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: tok + "x"})
	if _, ok := m.Username(req); ok {
		t.Fatalf("tampered cookie must not authenticate")
	}
}

func TestManager_ClearExpiresCookie(t *testing.T) {
	m := newTestManager(t)
	w := httptest.NewRecorder()
	m.Clear(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Fatalf("expected an expiring empty cookie, got %+v", cookies)
	}
}
