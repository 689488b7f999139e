package entity

type ConsultationType string

const (
	ConsultationAny    ConsultationType = ""
	ConsultationVideo  ConsultationType = "video"
	ConsultationClinic ConsultationType = "clinic"
)

func (t ConsultationType) Label() string {
	switch t {
	case ConsultationVideo:
		return "Video Consult"
	case ConsultationClinic:
		return "In Clinic"
	default:
		return string(t)
	}
}

type SortKey string

const (
	SortNone       SortKey = ""
	SortFees       SortKey = "fees"
	SortExperience SortKey = "experience"
)

func (k SortKey) Label() string {
	switch k {
	case SortFees:
		return "Fees Low-High"
	case SortExperience:
		return "Experience"
	default:
		return string(k)
	}
}

// DoctorFilter is a domain-level filter over the doctor catalog.
// Specialties is a set; insertion order is kept only for rendering.
type DoctorFilter struct {
	ConsultationType ConsultationType `json:"consultationType"`
	Specialties      []string         `json:"specialties"`
	SortBy           SortKey          `json:"sortBy"`
}

func (f DoctorFilter) HasSpecialty(name string) bool {
	for _, s := range f.Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// DirectoryQuery is everything the query string carries.
type DirectoryQuery struct {
	SearchTerm string       `json:"search"`
	Filter     DoctorFilter `json:"filters"`
}

func (q DirectoryQuery) IsEmpty() bool {
	return q.SearchTerm == "" &&
		q.Filter.ConsultationType == ConsultationAny &&
		len(q.Filter.Specialties) == 0 &&
		q.Filter.SortBy == SortNone
}
