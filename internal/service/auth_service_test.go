package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"diary_gateway/internal/backend"
	"diary_gateway/internal/models"
)

func TestAuthService_LoginSuccess(t *testing.T) {
	fb := &fakeBackend{loginResp: reply(`{"status":"success","message":"welcome"}`)}
	svc := NewAuthService(fb)

	creds := models.Credentials{Username: "bob", Password: "x"}
	if err := svc.Login(context.Background(), creds); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if fb.lastCreds != creds {
		t.Fatalf("credentials not forwarded as-is: %+v", fb.lastCreds)
	}
}

func TestAuthService_LoginRejectedUsesBackendMessage(t *testing.T) {
	fb := &fakeBackend{loginResp: reply(`{"status":"error","error":"wrong username or password"}`)}
	svc := NewAuthService(fb)

	err := svc.Login(context.Background(), models.Credentials{Username: "bob", Password: "bad"})
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if rejected.Message != "wrong username or password" {
		t.Fatalf("unexpected message %q", rejected.Message)
	}
	if errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("rejection must not be reported as unavailability")
	}
}

func TestAuthService_LoginUnavailable(t *testing.T) {
	cases := map[string]error{
		"unreachable": fmt.Errorf("%w: dial tcp: refused", backend.ErrUnreachable),
		"bad status":  &backend.StatusError{Endpoint: backend.PathLogin, Code: 502},
	}
	for name, berr := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewAuthService(&fakeBackend{loginErr: berr})
			err := svc.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
			if !errors.Is(err, ErrBackendUnavailable) {
				t.Fatalf("expected ErrBackendUnavailable, got %v", err)
			}
			if !errors.Is(err, berr) && !backend.IsUnavailable(err) {
				t.Fatalf("backend cause should stay inspectable: %v", err)
			}
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	fb := &fakeBackend{registerResp: reply(`{"status":"success","message":"registered"}`)}
	svc := NewAuthService(fb)
	if err := svc.Register(context.Background(), models.Credentials{Username: "new", Password: "pw"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(fb.calls) != 1 || fb.calls[0] != "register" {
		t.Fatalf("unexpected calls %v", fb.calls)
	}

	fb = &fakeBackend{registerResp: reply(`not json`)}
	err := NewAuthService(fb).Register(context.Background(), models.Credentials{Username: "new", Password: "pw"})
	var rejected *RejectedError
	if !errors.As(err, &rejected) || rejected.Message != "" {
		t.Fatalf("expected RejectedError with empty message, got %v", err)
	}
}
