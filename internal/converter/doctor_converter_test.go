package converter

import (
	"encoding/json"
	"testing"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRaw(t *testing.T, payload string) []dto.RawDoctor {
	t.Helper()
	var raws []dto.RawDoctor
	require.NoError(t, json.Unmarshal([]byte(payload), &raws))
	return raws
}

func TestParseFirstInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "experience text", input: "13 Years of experience", want: 13},
		{name: "rupee fee", input: "₹ 500", want: 500},
		{name: "rupee fee without space", input: "₹500", want: 500},
		{name: "first run only", input: "12-15 years", want: 12},
		{name: "decimal keeps integer part", input: "499.99", want: 499},
		{name: "free", input: "Free", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "overflow degrades to zero", input: "99999999999999999999999999", want: 0},
		{name: "leading zeros", input: "007 yrs", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFirstInteger(tt.input))
		})
	}
}

func TestRawDoctorToEntity_FullRecord(t *testing.T) {
	raws := decodeRaw(t, `[{
		"id": "111640",
		"name": "Dr. Kshitija Jagdale",
		"photo": "https://example.com/a.jpg",
		"specialities": [{"name": "Dentist"}, {"name": "Orthodontist"}],
		"experience": "13 Years of experience",
		"fees": "₹ 500",
		"qualifications": "BDS",
		"clinic": {"name": "Smile Clinic", "address": {"city": "Mumbai"}},
		"video_consult": true,
		"in_clinic": false
	}]`)

	got := RawDoctorToEntity(&raws[0])

	assert.Equal(t, entity.Doctor{
		ID:             "111640",
		Name:           "Dr. Kshitija Jagdale",
		Photo:          "https://example.com/a.jpg",
		Specialties:    []string{"Dentist", "Orthodontist"},
		Fees:           500,
		Experience:     13,
		Qualifications: "BDS",
		Clinic:         "Smile Clinic",
		Location:       "Mumbai",
		VideoConsult:   true,
		InClinic:       false,
	}, got)
}

func TestRawDoctorToEntity_MissingAndMalformedFields(t *testing.T) {
	raws := decodeRaw(t, `[
		{"id": 7, "experience": null, "fees": "Free"},
		{"id": "8", "name": null, "specialities": null, "clinic": null, "video_consult": "yes", "in_clinic": 0},
		{"id": "9", "clinic": {"name": "Only Name"}, "fees": 750, "qualifications": ["MBBS", "MD"]}
	]`)

	first := RawDoctorToEntity(&raws[0])
	assert.Equal(t, "7", first.ID)
	assert.Equal(t, 0, first.Experience)
	assert.Equal(t, 0, first.Fees)
	assert.Equal(t, "", first.Name)
	assert.NotNil(t, first.Specialties)
	assert.Empty(t, first.Specialties)

	second := RawDoctorToEntity(&raws[1])
	assert.Equal(t, "", second.Name)
	assert.Empty(t, second.Specialties)
	assert.Equal(t, "", second.Clinic)
	assert.Equal(t, "", second.Location)
	assert.True(t, second.VideoConsult)
	assert.False(t, second.InClinic)

	third := RawDoctorToEntity(&raws[2])
	assert.Equal(t, "Only Name", third.Clinic)
	assert.Equal(t, "", third.Location)
	assert.Equal(t, 750, third.Fees)
	assert.Equal(t, "MBBS, MD", third.Qualifications)
}

func TestRawDoctorToEntity_SkipsUnnamedSpecialities(t *testing.T) {
	raws := decodeRaw(t, `[
		{"id": "1", "specialities": [{"name": "Dentist"}, {"name": ""}, {}, {"name": null}, "Cardiologist", {"name": "Ayurveda"}]}
	]`)

	got := RawDoctorToEntity(&raws[0])

	assert.Equal(t, []string{"Dentist", "Ayurveda"}, got.Specialties)
	assert.Equal(t, []string{"Ayurveda", "Dentist"}, CollectSpecialties([]entity.Doctor{got}))
}

func TestRawDoctorsToEntities_PreservesOrder(t *testing.T) {
	raws := decodeRaw(t, `[{"id":"c","name":"C"},{"id":"a","name":"A"},{"id":"b","name":"B"}]`)

	doctors := RawDoctorsToEntities(raws)

	require.Len(t, doctors, 3)
	assert.Equal(t, "c", doctors[0].ID)
	assert.Equal(t, "a", doctors[1].ID)
	assert.Equal(t, "b", doctors[2].ID)
}

func TestCollectSpecialties(t *testing.T) {
	doctors := []entity.Doctor{
		{Specialties: []string{"Dentist", "dentist"}},
		{Specialties: []string{}},
		{Specialties: []string{"Cardiologist", "Dentist"}},
		{Specialties: []string{"Ayurveda"}},
	}

	assert.Equal(t, []string{"Ayurveda", "Cardiologist", "Dentist", "dentist"}, CollectSpecialties(doctors))
	assert.Equal(t, []string{}, CollectSpecialties(nil))
}

func TestDoctorsToSuggestions(t *testing.T) {
	doctors := []entity.Doctor{
		{ID: "1", Name: "Dr. A", Specialties: []string{"Dentist", "Orthodontist"}},
		{ID: "2", Name: "Dr. B"},
	}

	got := DoctorsToSuggestions(doctors)

	require.Len(t, got, 2)
	assert.Equal(t, "Dentist", got[0].Specialty)
	assert.Equal(t, "", got[1].Specialty)
}
