package usecase

import (
	"sort"
	"strings"

	"doctor-directory/internal/domain/entity"
)

const MaxSuggestions = 3

// FilterDoctors applies, in order, the name search, consultation type,
// specialty and sort steps. The input slice is never modified; ties keep
// their original relative order.
func FilterDoctors(doctors []entity.Doctor, searchTerm string, filter entity.DoctorFilter) []entity.Doctor {
	results := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if !matchesName(doctor, searchTerm) {
			continue
		}
		if !matchesConsultationType(doctor, filter.ConsultationType) {
			continue
		}
		if !matchesSpecialties(doctor, filter.Specialties) {
			continue
		}
		results = append(results, doctor)
	}

	switch filter.SortBy {
	case entity.SortFees:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Fees < results[j].Fees
		})
	case entity.SortExperience:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Experience > results[j].Experience
		})
	}

	return results
}

// SuggestDoctors returns up to MaxSuggestions name matches in list order.
// Whitespace-only input yields nothing.
func SuggestDoctors(doctors []entity.Doctor, searchTerm string) []entity.Doctor {
	suggestions := make([]entity.Doctor, 0, MaxSuggestions)
	if strings.TrimSpace(searchTerm) == "" {
		return suggestions
	}
	for _, doctor := range doctors {
		if len(suggestions) == MaxSuggestions {
			break
		}
		if matchesName(doctor, searchTerm) {
			suggestions = append(suggestions, doctor)
		}
	}
	return suggestions
}

func matchesName(doctor entity.Doctor, searchTerm string) bool {
	if searchTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(doctor.Name), strings.ToLower(searchTerm))
}

func matchesConsultationType(doctor entity.Doctor, consultationType entity.ConsultationType) bool {
	switch consultationType {
	case entity.ConsultationVideo:
		return doctor.VideoConsult
	case entity.ConsultationClinic:
		return doctor.InClinic
	default:
		return true
	}
}

// matchesSpecialties is an OR over the selected set.
func matchesSpecialties(doctor entity.Doctor, specialties []string) bool {
	if len(specialties) == 0 {
		return true
	}
	for _, s := range specialties {
		if doctor.HasSpecialty(s) {
			return true
		}
	}
	return false
}
