package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Backend Engineer</h1></body></html>"))
	}))
	defer srv.Close()

	page, err := NewClient(WithHeader("Accept-Language", "en")).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, page.URL)
	assert.Contains(t, page.HTML, "<h1>Backend Engineer</h1>")
	assert.Equal(t, http.StatusOK, page.Status)
	assert.Equal(t, "text/html", page.ContentType)
}

func TestClientGet_RejectsBadURLs(t *testing.T) {
	c := NewClient()
	for _, raw := range []string{"not-a-valid-url", "ftp://example.com/job", "https://"} {
		_, err := c.Get(context.Background(), raw)
		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr, raw)
		assert.Equal(t, "invalid URL", fetchErr.Op)
	}
}

func TestClientGet_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("gone"))
	}))
	defer srv.Close()

	page, err := NewClient().Get(context.Background(), srv.URL)
	require.Error(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "gone", page.HTML)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, err.Error(), "404")
}

func TestClientGet_TruncatesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer srv.Close()

	page, err := NewClient(WithMaxBytes(100), WithUserAgent("test")).Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, page.HTML, 100)
}

func TestClientGet_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(WithTimeout(50*time.Millisecond)).Get(context.Background(), srv.URL)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "request", fetchErr.Op)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &Error{URL: "https://example.com", Op: "request", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch https://example.com: request: connection reset", err.Error())
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, NeedsBrowser("Loading..."))
	assert.False(t, NeedsBrowser(strings.Repeat("requirement ", 60)))
}

func TestRender_InvalidURL(t *testing.T) {
	_, err := Render(context.Background(), "javascript:alert(1)")
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}
