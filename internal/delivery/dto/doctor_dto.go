package dto

import "doctor-directory/internal/domain/entity"

// Response DTOs

type DoctorResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Photo          string   `json:"photo,omitempty"`
	Specialties    []string `json:"specialties"`
	Fees           int      `json:"fees"`
	Experience     int      `json:"experience"`
	Qualifications string   `json:"qualifications"`
	Clinic         string   `json:"clinic"`
	Location       string   `json:"location"`
	VideoConsult   bool     `json:"video_consult"`
	InClinic       bool     `json:"in_clinic"`
}

type ActiveFilterResponse struct {
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	RemoveURL string `json:"remove_url"`
}

type DirectoryResponse struct {
	Doctors       []DoctorResponse       `json:"doctors"`
	Total         int                    `json:"total"`
	Specialties   []string               `json:"specialties"`
	Query         entity.DirectoryQuery  `json:"query"`
	Canonical     string                 `json:"canonical_query"`
	ActiveFilters []ActiveFilterResponse `json:"active_filters"`
}

type SuggestionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Photo     string `json:"photo,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
	Total       int                  `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
