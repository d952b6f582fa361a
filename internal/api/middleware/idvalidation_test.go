package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/tdejong/Trading-Journal-Backend/internal/api/middleware"
)

func requestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestValidateIDMiddleware(t *testing.T) {
	t.Run("passes through valid numeric id", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		})

		mw := middleware.ValidateIDMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithID("42"))

		if !handlerCalled {
			t.Error("Expected next handler to be called")
		}
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("returns 400 for non-numeric id", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
		})

		mw := middleware.ValidateIDMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithID("abc"))

		if handlerCalled {
			t.Error("Expected next handler NOT to be called")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for non-positive id", func(t *testing.T) {
		for _, id := range []string{"0", "-5"} {
			handlerCalled := false
			next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				handlerCalled = true
			})

			mw := middleware.ValidateIDMiddleware(next)

			w := httptest.NewRecorder()
			mw.ServeHTTP(w, requestWithID(id))

			if handlerCalled {
				t.Errorf("Expected next handler NOT to be called for id %q", id)
			}
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400 for id %q, got %d", id, w.Code)
			}
		}
	})

	t.Run("returns 400 for empty id", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
		})

		mw := middleware.ValidateIDMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithID(""))

		if handlerCalled {
			t.Error("Expected next handler NOT to be called")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
