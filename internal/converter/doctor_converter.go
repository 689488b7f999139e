package converter

import (
	"regexp"
	"sort"
	"strconv"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
)

var firstIntegerPattern = regexp.MustCompile(`[0-9]+`)

// ParseFirstInteger returns the first run of digits in text, or 0 when there
// is none or it does not fit in an int.
func ParseFirstInteger(text string) int {
	match := firstIntegerPattern.FindString(text)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// RawDoctorToEntity converts an upstream record to a normalised Doctor
func RawDoctorToEntity(raw *dto.RawDoctor) entity.Doctor {
	specialties := make([]string, 0, len(raw.Specialities))
	for _, spec := range raw.Specialities {
		if spec.Name == "" {
			continue
		}
		specialties = append(specialties, spec.Name.String())
	}

	return entity.Doctor{
		ID:             raw.ID.String(),
		Name:           raw.Name.String(),
		Photo:          raw.Photo.String(),
		Specialties:    specialties,
		Fees:           ParseFirstInteger(raw.Fees.String()),
		Experience:     ParseFirstInteger(raw.Experience.String()),
		Qualifications: raw.Qualifications.String(),
		Clinic:         raw.Clinic.Name.String(),
		Location:       raw.Clinic.Address.City.String(),
		VideoConsult:   bool(raw.VideoConsult),
		InClinic:       bool(raw.InClinic),
	}
}

// RawDoctorsToEntities converts upstream records, preserving their order
func RawDoctorsToEntities(raws []dto.RawDoctor) []entity.Doctor {
	doctors := make([]entity.Doctor, len(raws))
	for i := range raws {
		doctors[i] = RawDoctorToEntity(&raws[i])
	}
	return doctors
}

// CollectSpecialties returns every distinct specialty name, sorted
// lexicographically and compared case-sensitively.
func CollectSpecialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	specialties := make([]string, 0)
	for _, doctor := range doctors {
		for _, s := range doctor.Specialties {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			specialties = append(specialties, s)
		}
	}
	sort.Strings(specialties)
	return specialties
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Photo:          doctor.Photo,
		Specialties:    doctor.Specialties,
		Fees:           doctor.Fees,
		Experience:     doctor.Experience,
		Qualifications: doctor.Qualifications,
		Clinic:         doctor.Clinic,
		Location:       doctor.Location,
		VideoConsult:   doctor.VideoConsult,
		InClinic:       doctor.InClinic,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func DoctorsToSuggestions(doctors []entity.Doctor) []dto.SuggestionResponse {
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, doctor := range doctors {
		suggestions[i] = dto.SuggestionResponse{
			ID:        doctor.ID,
			Name:      doctor.Name,
			Photo:     doctor.Photo,
			Specialty: doctor.PrimarySpecialty(),
		}
	}
	return suggestions
}
