package services

import (
	"errors"
	"fmt"

	"github.com/worknest/staff/internal/repository"
	"gorm.io/gorm"
)

// ResourceService is the raw record access behind the operator console.
type ResourceService[T any] struct {
	repo repository.CRUDRepository[T]
}

// NewResourceService creates a new ResourceService
func NewResourceService[T any](repo repository.CRUDRepository[T]) *ResourceService[T] {
	return &ResourceService[T]{repo: repo}
}

func (s *ResourceService[T]) List(page, pageSize int) ([]T, int64, error) {
	records, total, err := s.repo.List(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list records: %w", err)
	}
	return records, total, nil
}

func (s *ResourceService[T]) Get(id uint64) (*T, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}
	return record, nil
}

func (s *ResourceService[T]) Create(record *T) error {
	return translateWriteError(s.repo.Create(record))
}

func (s *ResourceService[T]) Update(record *T) error {
	return translateWriteError(s.repo.Update(record))
}

func (s *ResourceService[T]) Delete(id uint64) error {
	return translateDeleteError(s.repo.Delete(id))
}
