package service

import (
	"context"

	"diary_gateway/internal/backend"
	"diary_gateway/internal/models"
)

// fakeBackend records calls in order and replies from per-endpoint scripts.
type fakeBackend struct {
	calls []string

	loginResp    *backend.Response
	loginErr     error
	registerResp *backend.Response
	registerErr  error
	fetchResp    *backend.Response
	fetchErr     error
	writeResp    *backend.Response
	writeErr     error
	validateResp *backend.Response
	validateErr  error

	lastCreds    models.Credentials
	lastUsername string
	lastEntry    models.DiaryEntry
}

func reply(body string) *backend.Response { return &backend.Response{Body: []byte(body)} }

func (f *fakeBackend) Login(_ context.Context, creds models.Credentials) (*backend.Response, error) {
	f.calls = append(f.calls, "login")
	f.lastCreds = creds
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) Register(_ context.Context, creds models.Credentials) (*backend.Response, error) {
	f.calls = append(f.calls, "register")
	f.lastCreds = creds
	return f.registerResp, f.registerErr
}

func (f *fakeBackend) FetchDiary(_ context.Context, username string) (*backend.Response, error) {
	f.calls = append(f.calls, "fetch")
	f.lastUsername = username
	return f.fetchResp, f.fetchErr
}

func (f *fakeBackend) WriteDiary(_ context.Context, username string, entry models.DiaryEntry) (*backend.Response, error) {
	f.calls = append(f.calls, "write")
	f.lastUsername = username
	f.lastEntry = entry
	return f.writeResp, f.writeErr
}

func (f *fakeBackend) ValidateBlockchain(_ context.Context) (*backend.Response, error) {
	f.calls = append(f.calls, "validate")
	return f.validateResp, f.validateErr
}
