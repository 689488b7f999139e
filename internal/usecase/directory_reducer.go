package usecase

import (
	"errors"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
)

// Reduce returns the state that follows ev. The input state is not modified
// and no slice in the result aliases one in the input that was changed.
func Reduce(state entity.DirectoryState, ev entity.DirectoryEvent) entity.DirectoryState {
	next := state
	next.Query = cloneQuery(state.Query)

	switch e := ev.(type) {
	case entity.FetchStarted:
		next.Status = entity.DirectoryLoading
		next.ErrMessage = ""

	case entity.FetchSucceeded:
		next.Status = entity.DirectoryReady
		next.Catalog = e.Catalog
		next.ErrMessage = ""

	case entity.FetchFailed:
		next.Status = entity.DirectoryFailed
		next.ErrMessage = errorMessage(e.Err)

	case entity.LocationChanged:
		next.Query = cloneQuery(e.Query)

	case entity.SearchChanged:
		next.Query.SearchTerm = e.Term
		next.Suggestions = SuggestDoctors(catalogDoctors(state.Catalog), e.Term)

	case entity.SuggestionSelected:
		next.Query.SearchTerm = e.Name
		next.Suggestions = nil

	case entity.ConsultationTypeChanged:
		next.Query.Filter.ConsultationType = e.Type

	case entity.SpecialtyToggled:
		next.Query.Filter.Specialties = toggleSpecialty(next.Query.Filter.Specialties, e.Name, e.Checked)

	case entity.SortChanged:
		next.Query.Filter.SortBy = e.SortBy

	case entity.FiltersCleared:
		next.Query = entity.DirectoryQuery{}
		next.Suggestions = nil

	case entity.FiltersToggled:
		next.ShowFilters = !state.ShowFilters
	}

	return next
}

// ShouldSyncURL reports whether the query string may be rewritten from state.
// Until a non-empty list has loaded, a deep link is left untouched.
func ShouldSyncURL(state entity.DirectoryState) bool {
	return !state.Catalog.IsEmpty()
}

func VisibleDoctors(state entity.DirectoryState) []entity.Doctor {
	if state.Status != entity.DirectoryReady {
		return nil
	}
	return FilterDoctors(catalogDoctors(state.Catalog), state.Query.SearchTerm, state.Query.Filter)
}

// SidebarVisible: the filter sidebar is always shown on wide viewports and
// on narrow ones only after the user opened it.
func SidebarVisible(state entity.DirectoryState, narrowViewport bool) bool {
	return state.ShowFilters || !narrowViewport
}

// ActiveFilters lists the removable chips for query, in display order.
func ActiveFilters(query entity.DirectoryQuery) []entity.ActiveFilter {
	var chips []entity.ActiveFilter

	if query.SearchTerm != "" {
		chips = append(chips, entity.ActiveFilter{
			Kind:   "search",
			Label:  "Search: " + query.SearchTerm,
			Remove: entity.SearchChanged{Term: ""},
		})
	}
	for _, s := range query.Filter.Specialties {
		chips = append(chips, entity.ActiveFilter{
			Kind:   "specialty",
			Label:  s,
			Remove: entity.SpecialtyToggled{Name: s, Checked: false},
		})
	}
	if query.Filter.ConsultationType != entity.ConsultationAny {
		chips = append(chips, entity.ActiveFilter{
			Kind:   "consultationType",
			Label:  query.Filter.ConsultationType.Label(),
			Remove: entity.ConsultationTypeChanged{Type: entity.ConsultationAny},
		})
	}
	if query.Filter.SortBy != entity.SortNone {
		chips = append(chips, entity.ActiveFilter{
			Kind:   "sortBy",
			Label:  "Sort: " + query.Filter.SortBy.Label(),
			Remove: entity.SortChanged{SortBy: entity.SortNone},
		})
	}

	return chips
}

func toggleSpecialty(selected []string, name string, checked bool) []string {
	out := make([]string, 0, len(selected)+1)
	for _, s := range selected {
		if s != name {
			out = append(out, s)
		}
	}
	if checked {
		// Re-checking keeps the original position.
		if containsString(selected, name) {
			return append([]string(nil), selected...)
		}
		out = append(out, name)
	}
	return out
}

func cloneQuery(q entity.DirectoryQuery) entity.DirectoryQuery {
	if q.Filter.Specialties != nil {
		q.Filter.Specialties = append([]string(nil), q.Filter.Specialties...)
	}
	return q
}

func catalogDoctors(c *entity.DoctorCatalog) []entity.Doctor {
	if c == nil {
		return nil
	}
	return c.Doctors
}

func errorMessage(err error) string {
	var fetchErr *repository.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.UserMessage()
	}
	if err == nil {
		return repository.FetchErrorMessage
	}
	return err.Error()
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
