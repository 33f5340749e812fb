// Package middleware provides HTTP middleware shared by the API handlers.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// requestIDKey is the context key for the request ID.
const requestIDKey ContextKey = "requestID"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, reusing a well-formed incoming
// X-Request-ID header, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}
		w.Header().Set(RequestIDHeader, id.String())
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request ID stored by RequestID, or uuid.Nil.
func GetRequestID(r *http.Request) uuid.UUID {
	id, ok := r.Context().Value(requestIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
