package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func errorApp(handler fiber.Handler) *fiber.App {
	f := fiber.New()
	f.Use(NewErrorMiddleware(nil).Middleware())
	f.Get("/boom", handler)
	return f
}

func TestMiddlewareKeepsServiceUnavailable(t *testing.T) {
	f := errorApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusServiceUnavailable, "dataset failed to load", nil, errors.New("parse failure"))
	})

	resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "dataset failed to load" {
		t.Errorf("message = %q, want handler message preserved", body.Message)
	}
}

func TestMiddlewareMasksOtherServerErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"app error 500", NewAppError(fiber.StatusInternalServerError, "db exploded", nil, nil)},
		{"app error 502", NewAppError(fiber.StatusBadGateway, "upstream gone", nil, nil)},
		{"plain error", errors.New("unexpected")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := errorApp(func(c fiber.Ctx) error { return tc.err })

			resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			if err != nil {
				t.Fatalf("Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", resp.StatusCode)
			}

			var body envelope
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message == "db exploded" || body.Message == "upstream gone" || body.Message == "unexpected" {
				t.Errorf("internal detail leaked: %q", body.Message)
			}
		})
	}
}

func TestMiddlewareKeepsClientErrors(t *testing.T) {
	f := errorApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "limit must be a non-negative integer", nil, nil)
	})

	resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
