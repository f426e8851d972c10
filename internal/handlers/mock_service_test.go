package handlers

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"diary_gateway/internal/models"
	"diary_gateway/internal/service"
	"diary_gateway/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginErr    error
	registerErr error

	loginCalls    int
	registerCalls int
	lastCreds     models.Credentials
}

func (m *mockAuth) Login(ctx context.Context, creds models.Credentials) error {
	m.loginCalls++
	m.lastCreds = creds
	return m.loginErr
}
func (m *mockAuth) Register(ctx context.Context, creds models.Credentials) error {
	m.registerCalls++
	m.lastCreds = creds
	return m.registerErr
}

type mockDiary struct {
	readEnv  models.Envelope
	readErr  error
	writeEnv models.Envelope
	writeErr error

	readCalls    int
	writeCalls   int
	lastUsername string
	lastEntry    models.DiaryEntry
}

func (m *mockDiary) Read(ctx context.Context, username string) (models.Envelope, error) {
	m.readCalls++
	m.lastUsername = username
	return m.readEnv, m.readErr
}
func (m *mockDiary) Write(ctx context.Context, username string, entry models.DiaryEntry) (models.Envelope, error) {
	m.writeCalls++
	m.lastUsername = username
	m.lastEntry = entry
	return m.writeEnv, m.writeErr
}

// mockLedger is read from the websocket goroutine, hence the lock.
type mockLedger struct {
	mu    sync.Mutex
	env   models.Envelope
	err   error
	calls int
}

func (m *mockLedger) Validate(ctx context.Context) (models.Envelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.env, m.err
}

func (m *mockLedger) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockActivity struct {
	recordErr  error
	recorded   []models.Activity
	resp       []models.Activity
	listErr    error
	lastFilter service.ActivityFilter
}

func (m *mockActivity) Record(ctx context.Context, a models.Activity) error {
	m.recorded = append(m.recorded, a)
	return m.recordErr
}
func (m *mockActivity) List(ctx context.Context, f service.ActivityFilter) ([]models.Activity, error) {
	m.lastFilter = f
	return m.resp, m.listErr
}

func (m *mockActivity) types() []string {
	out := make([]string, 0, len(m.recorded))
	for _, a := range m.recorded {
		out = append(out, a.Type)
	}
	return out
}

// ---- Shared Test Helpers ----

const testSecret = "test-secret"

func newTestSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Options{Secret: testSecret})
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return m
}

func newTestRouter(t *testing.T, s *service.Service) (*gin.Engine, *session.Manager) {
	return newTestRouterWithOptions(t, s, Options{})
}

func newTestRouterWithOptions(t *testing.T, s *service.Service, opts Options) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessions := newTestSessions(t)
	h := NewHandler(s, sessions, nil, opts)
	return h.InitRoutes(), sessions
}

// sessionCookie returns a valid session cookie for username.
func sessionCookie(t *testing.T, m *session.Manager, username string) *http.Cookie {
	t.Helper()
	token, err := m.Issue(username)
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	return &http.Cookie{Name: m.CookieName(), Value: token}
}
