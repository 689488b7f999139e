package entity

type DirectoryStatus string

const (
	DirectoryLoading DirectoryStatus = "loading"
	DirectoryReady   DirectoryStatus = "ready"
	DirectoryFailed  DirectoryStatus = "failed"
)

// DirectoryState is the session state behind one rendering of the directory.
type DirectoryState struct {
	Status      DirectoryStatus
	Catalog     *DoctorCatalog
	Query       DirectoryQuery
	Suggestions []Doctor
	ShowFilters bool
	ErrMessage  string
}

// DirectoryEvent is implemented by every user or lifecycle event the
// directory reducer understands.
type DirectoryEvent interface {
	directoryEvent()
}

type (
	FetchStarted   struct{}
	FetchSucceeded struct{ Catalog *DoctorCatalog }
	FetchFailed    struct{ Err error }

	LocationChanged    struct{ Query DirectoryQuery }
	SearchChanged      struct{ Term string }
	SuggestionSelected struct{ Name string }

	ConsultationTypeChanged struct{ Type ConsultationType }
	SpecialtyToggled        struct {
		Name    string
		Checked bool
	}
	SortChanged    struct{ SortBy SortKey }
	FiltersCleared struct{}
	FiltersToggled struct{}
)

func (FetchStarted) directoryEvent()            {}
func (FetchSucceeded) directoryEvent()          {}
func (FetchFailed) directoryEvent()             {}
func (LocationChanged) directoryEvent()         {}
func (SearchChanged) directoryEvent()           {}
func (SuggestionSelected) directoryEvent()      {}
func (ConsultationTypeChanged) directoryEvent() {}
func (SpecialtyToggled) directoryEvent()        {}
func (SortChanged) directoryEvent()             {}
func (FiltersCleared) directoryEvent()          {}
func (FiltersToggled) directoryEvent()          {}

// ActiveFilter is a removable chip. Remove is the event that clears it.
type ActiveFilter struct {
	Kind   string
	Label  string
	Remove DirectoryEvent
}
