package handler

import (
	"bytes"
	"net/http"

	"doctor-directory/internal/delivery/http/querystring"
	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/usecase"

	"github.com/sirupsen/logrus"
)

// ProfileBasePath is where doctor cards link to.
const ProfileBasePath = "/api/v1/doctors"

type DirectoryPageHandler struct {
	log              *logrus.Logger
	directoryUsecase usecase.DoctorDirectoryUsecase
	renderer         *view.Renderer
}

func NewDirectoryPageHandler(log *logrus.Logger, directoryUsecase usecase.DoctorDirectoryUsecase, renderer *view.Renderer) *DirectoryPageHandler {
	return &DirectoryPageHandler{
		log:              log,
		directoryUsecase: directoryUsecase,
		renderer:         renderer,
	}
}

// Show renders the directory for the request's query string. Once the list
// has loaded, a non-canonical query string is answered with a redirect to
// its canonical form so each view has exactly one URL.
func (h *DirectoryPageHandler) Show(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Accept-CH", view.AcceptClientHints)
	w.Header().Set("Vary", view.AcceptClientHints)

	state := usecase.Reduce(entity.DirectoryState{}, entity.FetchStarted{})
	state = usecase.Reduce(state, entity.LocationChanged{Query: querystring.Decode(r.URL.Query())})

	status := http.StatusOK
	catalog, err := h.directoryUsecase.Catalog(r.Context())
	if err != nil {
		state = usecase.Reduce(state, entity.FetchFailed{Err: err})
		status = http.StatusInternalServerError
		if repository.IsFetchError(err) {
			status = http.StatusBadGateway
		}
	} else {
		state = usecase.Reduce(state, entity.FetchSucceeded{Catalog: catalog})
	}

	if usecase.ShouldSyncURL(state) {
		if _, ok := querystring.Canonical(r.URL.RawQuery); !ok {
			http.Redirect(w, r, querystring.Href(r.URL.Path, state.Query), http.StatusFound)
			return
		}
	}

	if term := state.Query.SearchTerm; term != "" && status == http.StatusOK {
		state = usecase.Reduce(state, entity.SearchChanged{Term: term})
		for _, d := range state.Suggestions {
			if d.Name == term {
				state = usecase.Reduce(state, entity.SuggestionSelected{Name: d.Name})
				break
			}
		}
	}

	page := view.BuildPage(state, view.NewClientHintViewport(r), r.URL.Path, ProfileBasePath)

	var buf bytes.Buffer
	if err := h.renderer.RenderDirectory(&buf, page); err != nil {
		h.log.Errorf("Failed to render directory page: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debugf("Failed to write directory page: %+v", err)
	}
}
