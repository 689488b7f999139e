package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"
)

type DoctorRepository interface {
	// FindAll fetches and normalises the complete doctor list. Any failure
	// to retrieve or decode the list is returned as *FetchError.
	FindAll(ctx context.Context) (*entity.DoctorCatalog, error)
}
