package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, http.StatusOK, "ok", map[string]int{"total": 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Message)
	assert.Equal(t, map[string]interface{}{"total": float64(2)}, body.Data)
}

func TestErrorHelpersUseDefaultMessages(t *testing.T) {
	tests := []struct {
		name    string
		write   func(w http.ResponseWriter)
		status  int
		message string
	}{
		{name: "not found", write: func(w http.ResponseWriter) { NotFound(w, "") }, status: http.StatusNotFound, message: "Resource not found"},
		{name: "bad gateway", write: func(w http.ResponseWriter) { BadGateway(w, "") }, status: http.StatusBadGateway, message: "Upstream unavailable"},
		{name: "internal", write: func(w http.ResponseWriter) { InternalServerError(w, "") }, status: http.StatusInternalServerError, message: "Internal server error"},
		{name: "method", write: MethodNotAllowed, status: http.StatusMethodNotAllowed, message: "Method not allowed"},
		{name: "custom", write: func(w http.ResponseWriter) { BadGateway(w, "Failed to fetch doctors") }, status: http.StatusBadGateway, message: "Failed to fetch doctors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
