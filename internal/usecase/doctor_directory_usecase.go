package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/delivery/http/querystring"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

const catalogFlightKey = "catalog"

type DoctorDirectoryUsecase interface {
	Catalog(ctx context.Context) (*entity.DoctorCatalog, error)
	Browse(ctx context.Context, query entity.DirectoryQuery) (*dto.DirectoryResponse, error)
	Suggest(ctx context.Context, searchTerm string) (*dto.SuggestionListResponse, error)
	ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
}

type doctorDirectoryUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	ttl        time.Duration
	now        func() time.Time

	mu      sync.RWMutex
	catalog *entity.DoctorCatalog
	group   singleflight.Group
}

// NewDoctorDirectoryUsecase serves every request from one in-memory catalog.
// A zero ttl keeps the first successful catalog forever; failed loads are
// never remembered.
func NewDoctorDirectoryUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository, ttl time.Duration) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Catalog returns the shared catalog, loading it when missing or stale. The
// load runs detached from ctx so a caller that goes away does not fail the
// others waiting on it; that caller alone gets ctx.Err().
func (u *doctorDirectoryUsecase) Catalog(ctx context.Context) (*entity.DoctorCatalog, error) {
	if catalog := u.fresh(); catalog != nil {
		return catalog, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := u.group.DoChan(catalogFlightKey, func() (interface{}, error) {
		if catalog := u.fresh(); catalog != nil {
			return catalog, nil
		}
		catalog, err := u.doctorRepo.FindAll(loadCtx)
		if err != nil {
			return nil, err
		}
		u.mu.Lock()
		u.catalog = catalog
		u.mu.Unlock()
		return catalog, nil
	})

	select {
	case <-ctx.Done():
		u.log.Debugf("Doctor catalog wait abandoned: %+v", ctx.Err())
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			u.log.Warnf("Failed to load doctor catalog: %+v", res.Err)
			return nil, res.Err
		}
		if res.Shared {
			u.log.Debug("Doctor catalog load shared with a concurrent request")
		}
		return res.Val.(*entity.DoctorCatalog), nil
	}
}

func (u *doctorDirectoryUsecase) Browse(ctx context.Context, query entity.DirectoryQuery) (*dto.DirectoryResponse, error) {
	catalog, err := u.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	doctors := FilterDoctors(catalog.Doctors, query.SearchTerm, query.Filter)

	state := entity.DirectoryState{Status: entity.DirectoryReady, Catalog: catalog, Query: query}
	chips := ActiveFilters(query)
	activeFilters := make([]dto.ActiveFilterResponse, len(chips))
	for i, chip := range chips {
		activeFilters[i] = dto.ActiveFilterResponse{
			Kind:      chip.Kind,
			Label:     chip.Label,
			RemoveURL: querystring.Href("/", Reduce(state, chip.Remove).Query),
		}
	}

	return &dto.DirectoryResponse{
		Doctors:       converter.DoctorsToResponses(doctors),
		Total:         len(doctors),
		Specialties:   catalog.Specialties,
		Query:         query,
		Canonical:     querystring.Encode(query),
		ActiveFilters: activeFilters,
	}, nil
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, searchTerm string) (*dto.SuggestionListResponse, error) {
	catalog, err := u.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := converter.DoctorsToSuggestions(SuggestDoctors(catalog.Doctors, searchTerm))

	return &dto.SuggestionListResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}, nil
}

func (u *doctorDirectoryUsecase) ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	catalog, err := u.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: catalog.Specialties,
		Total:       len(catalog.Specialties),
	}, nil
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	catalog, err := u.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	doctor, ok := catalog.FindByID(doctorID)
	if !ok {
		u.log.Warnf("Failed to find doctor: %+v", doctorID)
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorDirectoryUsecase) fresh() *entity.DoctorCatalog {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if u.catalog == nil {
		return nil
	}
	if u.ttl > 0 && u.now().Sub(u.catalog.LoadedAt) >= u.ttl {
		return nil
	}
	return u.catalog
}
