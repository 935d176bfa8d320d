package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		upgrade bool
		query   string
		want    string
		wantOK  bool
	}{
		{name: "bearer", header: "Bearer abc", want: "abc", wantOK: true},
		{name: "lowercase scheme", header: "bearer abc", want: "abc", wantOK: true},
		{name: "basic scheme", header: "Basic abc"},
		{name: "missing token", header: "Bearer"},
		{name: "no header"},
		{name: "query on upgrade", upgrade: true, query: "abc", want: "abc", wantOK: true},
		{name: "query without upgrade", query: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/ws"
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			r := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if tt.upgrade {
				r.Header.Set("Upgrade", "websocket")
			}
			got, ok := BearerToken(r)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type staticValidator struct {
	id  uuid.UUID
	err error
}

func (v staticValidator) ValidateToken(string) (uuid.UUID, error) { return v.id, v.err }

func TestAuthMiddleware(t *testing.T) {
	id := uuid.New()
	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserID(r.Context())
	})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	r.Header.Set("Authorization", "Bearer ok")
	AuthMiddleware(staticValidator{id: id})(next).ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, seen)

	rec = httptest.NewRecorder()
	AuthMiddleware(staticValidator{err: errors.New("expired")})(next).ServeHTTP(rec, r)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	AuthMiddleware(staticValidator{id: id})(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contacts", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
