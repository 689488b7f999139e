// Package view renders the directory page. It holds no business logic: every
// link target is the encoding of the state that the matching event produces.
package view

import (
	"net/url"
	"regexp"
	"strings"

	"doctor-directory/internal/delivery/http/querystring"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/usecase"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

type Page struct {
	Status     entity.DirectoryStatus
	ErrMessage string

	SearchTerm   string
	SearchHidden []HiddenField
	Suggestions  []SuggestionItem

	SidebarOpen   bool
	ClearAllHref  string
	Specialties   []Option
	Consultation  []Option
	ConsultClear  string
	SortOptions   []Option
	SortClear     string
	ActiveFilters []Chip
	Doctors       []DoctorCard
	Total         int
}

func (p Page) Loading() bool { return p.Status == entity.DirectoryLoading }
func (p Page) Failed() bool  { return p.Status == entity.DirectoryFailed }

type HiddenField struct {
	Name  string
	Value string
}

type SuggestionItem struct {
	Name      string
	Photo     string
	Specialty string
	Href      string
}

type Option struct {
	ID      string
	Label   string
	Checked bool
	Href    string
}

type Chip struct {
	Label      string
	RemoveHref string
}

type DoctorCard struct {
	ID             string
	Name           string
	Photo          string
	Specialties    string
	Experience     int
	Fees           int
	Qualifications string
	Clinic         string
	Location       string
	VideoConsult   bool
	InClinic       bool
	ProfileHref    string
}

// BuildPage projects state into template data. path is the page's own URL
// path and profileBase the prefix of the doctor profile endpoint.
func BuildPage(state entity.DirectoryState, viewport Viewport, path, profileBase string) Page {
	href := func(ev entity.DirectoryEvent) string {
		return querystring.Href(path, usecase.Reduce(state, ev).Query)
	}
	filter := state.Query.Filter

	page := Page{
		Status:       state.Status,
		ErrMessage:   state.ErrMessage,
		SearchTerm:   state.Query.SearchTerm,
		SearchHidden: hiddenFields(state.Query),
		SidebarOpen:  usecase.SidebarVisible(state, viewport.IsNarrowViewport()),
		ClearAllHref: href(entity.FiltersCleared{}),
	}

	for _, d := range state.Suggestions {
		page.Suggestions = append(page.Suggestions, SuggestionItem{
			Name:      d.Name,
			Photo:     d.Photo,
			Specialty: d.PrimarySpecialty(),
			Href:      href(entity.SuggestionSelected{Name: d.Name}),
		})
	}

	if state.Catalog != nil {
		for _, s := range state.Catalog.Specialties {
			checked := filter.HasSpecialty(s)
			page.Specialties = append(page.Specialties, Option{
				ID:      SpecialtyTestID(s),
				Label:   s,
				Checked: checked,
				Href:    href(entity.SpecialtyToggled{Name: s, Checked: !checked}),
			})
		}
	}

	page.Consultation = []Option{
		{ID: "filter-video-consult", Label: entity.ConsultationVideo.Label(), Checked: filter.ConsultationType == entity.ConsultationVideo, Href: href(entity.ConsultationTypeChanged{Type: entity.ConsultationVideo})},
		{ID: "filter-in-clinic", Label: entity.ConsultationClinic.Label(), Checked: filter.ConsultationType == entity.ConsultationClinic, Href: href(entity.ConsultationTypeChanged{Type: entity.ConsultationClinic})},
	}
	if filter.ConsultationType != entity.ConsultationAny {
		page.ConsultClear = href(entity.ConsultationTypeChanged{Type: entity.ConsultationAny})
	}

	page.SortOptions = []Option{
		{ID: "sort-fees", Label: "Fees: Low-High", Checked: filter.SortBy == entity.SortFees, Href: href(entity.SortChanged{SortBy: entity.SortFees})},
		{ID: "sort-experience", Label: "Experience: Most first", Checked: filter.SortBy == entity.SortExperience, Href: href(entity.SortChanged{SortBy: entity.SortExperience})},
	}
	if filter.SortBy != entity.SortNone {
		page.SortClear = href(entity.SortChanged{SortBy: entity.SortNone})
	}

	for _, chip := range usecase.ActiveFilters(state.Query) {
		page.ActiveFilters = append(page.ActiveFilters, Chip{Label: chip.Label, RemoveHref: href(chip.Remove)})
	}

	doctors := usecase.VisibleDoctors(state)
	page.Total = len(doctors)
	for _, d := range doctors {
		page.Doctors = append(page.Doctors, toCard(d, profileBase))
	}

	return page
}

// SpecialtyTestID is the data-testid of a specialty checkbox.
func SpecialtyTestID(specialty string) string {
	id := whitespaceRun.ReplaceAllString(specialty, "-")
	return "filter-specialty-" + strings.ReplaceAll(id, "/", "-")
}

func hiddenFields(query entity.DirectoryQuery) []HiddenField {
	var fields []HiddenField
	if query.Filter.ConsultationType != entity.ConsultationAny {
		fields = append(fields, HiddenField{Name: querystring.ParamConsultationType, Value: string(query.Filter.ConsultationType)})
	}
	if query.Filter.SortBy != entity.SortNone {
		fields = append(fields, HiddenField{Name: querystring.ParamSortBy, Value: string(query.Filter.SortBy)})
	}
	for _, s := range query.Filter.Specialties {
		fields = append(fields, HiddenField{Name: querystring.ParamSpecialty, Value: s})
	}
	return fields
}

func toCard(d entity.Doctor, profileBase string) DoctorCard {
	return DoctorCard{
		ID:             d.ID,
		Name:           d.Name,
		Photo:          d.Photo,
		Specialties:    strings.Join(d.Specialties, ", "),
		Experience:     d.Experience,
		Fees:           d.Fees,
		Qualifications: d.Qualifications,
		Clinic:         d.Clinic,
		Location:       d.Location,
		VideoConsult:   d.VideoConsult,
		InClinic:       d.InClinic,
		ProfileHref:    profileBase + "/" + url.PathEscape(d.ID),
	}
}
