package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/usecase"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	catalog *entity.DoctorCatalog
}

func (s *stubRepository) FindAll(ctx context.Context) (*entity.DoctorCatalog, error) {
	return s.catalog, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log, _ := test.NewNullLogger()
	repo := &stubRepository{catalog: &entity.DoctorCatalog{
		Doctors: []entity.Doctor{
			{ID: "1", Name: "Dr. Amit Sharma", Specialties: []string{"Dentist"}, Fees: 500, Experience: 10, VideoConsult: true},
			{ID: "2", Name: "Dr. Priya Nair", Specialties: []string{"Dermatologist"}, Fees: 300, Experience: 15, InClinic: true},
		},
		Specialties: []string{"Dentist", "Dermatologist"},
	}}
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, repo, 0)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	return NewRouter(
		handler.NewDoctorHandler(directoryUsecase),
		handler.NewDirectoryPageHandler(log, directoryUsecase, renderer),
		middleware.NewCORSMiddleware(),
		middleware.NewRequestLoggerMiddleware(log),
	).Setup()
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "page", method: http.MethodGet, target: "/", wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, target: "/api/v1/health", wantStatus: http.StatusOK},
		{name: "doctors", method: http.MethodGet, target: "/api/v1/doctors?sortBy=fees", wantStatus: http.StatusOK},
		{name: "suggestions are not an id", method: http.MethodGet, target: "/api/v1/doctors/suggestions?search=nair", wantStatus: http.StatusOK},
		{name: "doctor", method: http.MethodGet, target: "/api/v1/doctors/2", wantStatus: http.StatusOK},
		{name: "unknown doctor", method: http.MethodGet, target: "/api/v1/doctors/99", wantStatus: http.StatusNotFound},
		{name: "specialties", method: http.MethodGet, target: "/api/v1/specialties", wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, target: "/api/v1/doctors", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
		{name: "write method", method: http.MethodPost, target: "/api/v1/doctors", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_SuggestionsPayload(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/doctors/suggestions?search=nair", nil))

	var body struct {
		Data struct {
			Suggestions []struct {
				ID string `json:"id"`
			} `json:"suggestions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Suggestions, 1)
	assert.Equal(t, "2", body.Data.Suggestions[0].ID)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
