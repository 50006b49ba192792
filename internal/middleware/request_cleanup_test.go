package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type trackingBody struct {
	*bytes.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestDrainAndCloseRequest(t *testing.T) {
	handler := DrainAndCloseRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// read only the start of the plan body
		buf := make([]byte, 4)
		_, _ = io.ReadFull(r.Body, buf)
		w.WriteHeader(http.StatusAccepted)
	}))

	t.Run("small body is drained and closed", func(t *testing.T) {
		body := &trackingBody{Reader: bytes.NewReader([]byte(`{"exercises":[],"meals":[]}`))}
		req := httptest.NewRequest(http.MethodPut, "/plans/Monday", nil)
		req.Body = body

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.True(t, body.closed)
		assert.Zero(t, body.Len())
	})

	t.Run("draining stops at the limit", func(t *testing.T) {
		body := &trackingBody{Reader: bytes.NewReader(make([]byte, maxDrainBytes+1024))}
		req := httptest.NewRequest(http.MethodPut, "/plans/Monday", nil)
		req.Body = body

		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.True(t, body.closed)
		assert.Equal(t, 1024-4, body.Len())
	})

	t.Run("no body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/plans", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusAccepted, rr.Code)
	})
}
