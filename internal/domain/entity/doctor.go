package entity

import "time"

// Doctor is a normalised directory record. Fees and Experience are always
// non-negative; Specialties is never nil.
type Doctor struct {
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

func (d Doctor) HasSpecialty(name string) bool {
	for _, s := range d.Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// PrimarySpecialty is shown under the name in suggestion rows.
func (d Doctor) PrimarySpecialty() string {
	if len(d.Specialties) == 0 {
		return ""
	}
	return d.Specialties[0]
}

// DoctorCatalog is the full list as fetched once from upstream. It is never
// mutated after construction.
type DoctorCatalog struct {
	Doctors     []Doctor
	Specialties []string
	LoadedAt    time.Time
}

func (c *DoctorCatalog) IsEmpty() bool {
	return c == nil || len(c.Doctors) == 0
}

func (c *DoctorCatalog) FindByID(id string) (*Doctor, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Doctors {
		if c.Doctors[i].ID == id {
			return &c.Doctors[i], true
		}
	}
	return nil, false
}
