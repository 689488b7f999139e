package handler

import (
	"errors"
	"net/http"

	"doctor-directory/internal/delivery/http/querystring"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	query := querystring.Decode(r.URL.Query())

	directory, err := h.directoryUsecase.Browse(r.Context(), query)
	if err != nil {
		writeDirectoryError(w, err, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", directory)
}

func (h *DoctorHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	searchTerm := r.URL.Query().Get(querystring.ParamSearch)

	suggestions, err := h.directoryUsecase.Suggest(r.Context(), searchTerm)
	if err != nil {
		writeDirectoryError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["id"]
	if doctorID == "" {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		writeDirectoryError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.ListSpecialties(r.Context())
	if err != nil {
		writeDirectoryError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	var fetchErr *repository.FetchError
	if errors.As(err, &fetchErr) {
		response.BadGateway(w, fetchErr.UserMessage())
		return
	}
	response.InternalServerError(w, fallback)
}
