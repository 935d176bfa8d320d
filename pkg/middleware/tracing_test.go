package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRouteTemplate(t *testing.T) {
	var got string
	r := mux.NewRouter()
	r.HandleFunc("/messages/{peerID}", func(w http.ResponseWriter, r *http.Request) {
		got = routeTemplate(r)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/messages/7d1f", nil))
	assert.Equal(t, "/messages/{peerID}", got)

	assert.Equal(t, "/health", routeTemplate(httptest.NewRequest(http.MethodGet, "/health", nil)))
}

func TestTracerMiddlewareKeepsStatus(t *testing.T) {
	h := TracerMiddleware("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
