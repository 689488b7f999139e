package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/cache"
	"doctor-directory/internal/infrastructure/upstream"

	"github.com/sirupsen/logrus"
)

type doctorRepository struct {
	client upstream.Client
	cache  cache.DoctorListCache
	log    *logrus.Logger
	now    func() time.Time
}

func NewDoctorRepository(client upstream.Client, listCache cache.DoctorListCache, log *logrus.Logger) domainRepo.DoctorRepository {
	if listCache == nil {
		listCache = cache.NoopDoctorListCache{}
	}
	return &doctorRepository{
		client: client,
		cache:  listCache,
		log:    log,
		now:    time.Now,
	}
}

func (r *doctorRepository) FindAll(ctx context.Context) (*entity.DoctorCatalog, error) {
	if payload, ok := r.cached(ctx); ok {
		raws, err := decodeDoctors(payload)
		if err == nil {
			r.log.Debugf("Loaded %d doctors from cache", len(raws))
			return r.buildCatalog(raws), nil
		}
		r.log.Warnf("Failed to decode cached doctor list, refetching: %+v", err)
	}

	payload, err := r.client.FetchDoctors(ctx)
	if err != nil {
		r.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, err
	}

	raws, err := decodeDoctors(payload)
	if err != nil {
		r.log.Warnf("Failed to decode doctor list: %+v", err)
		return nil, &domainRepo.FetchError{Err: err}
	}

	if err := r.cache.Set(ctx, payload); err != nil {
		r.log.Warnf("Failed to cache doctor list: %+v", err)
	}

	r.log.Infof("Fetched %d doctors from upstream", len(raws))
	return r.buildCatalog(raws), nil
}

func (r *doctorRepository) cached(ctx context.Context) ([]byte, bool) {
	payload, ok, err := r.cache.Get(ctx)
	if err != nil {
		// Cache errors degrade to a miss.
		r.log.Warnf("Failed to read doctor list cache: %+v", err)
		return nil, false
	}
	return payload, ok
}

func (r *doctorRepository) buildCatalog(raws []dto.RawDoctor) *entity.DoctorCatalog {
	doctors := converter.RawDoctorsToEntities(raws)
	return &entity.DoctorCatalog{
		Doctors:     doctors,
		Specialties: converter.CollectSpecialties(doctors),
		LoadedAt:    r.now(),
	}
}

func decodeDoctors(payload []byte) ([]dto.RawDoctor, error) {
	var raws []dto.RawDoctor
	if err := json.Unmarshal(payload, &raws); err != nil {
		return nil, fmt.Errorf("decode doctor list: %w", err)
	}
	if raws == nil {
		return nil, errors.New("decode doctor list: payload is not a JSON array")
	}
	return raws, nil
}
