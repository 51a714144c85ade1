package repository

import (
	"github.com/worknest/staff/internal/database"
	"gorm.io/gorm"
)

// GormRepository is a generic GORM implementation of CRUDRepository
type GormRepository[T any] struct {
	db    *gorm.DB
	order string
}

// NewGormRepository creates a CRUDRepository listing records in the given order
func NewGormRepository[T any](db *gorm.DB, order string) CRUDRepository[T] {
	if order == "" {
		order = "id ASC"
	}
	return &GormRepository[T]{db: db, order: order}
}

func (r *GormRepository[T]) Create(record *T) error {
	return r.db.Create(record).Error
}

func (r *GormRepository[T]) FindByID(id uint64) (*T, error) {
	var record T
	if err := r.db.First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *GormRepository[T]) List(page, pageSize int) ([]T, int64, error) {
	var total int64
	if err := r.db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := []T{}
	query := r.db.Order(r.order)
	if page > 0 {
		query = query.Scopes(database.Paginate((page-1)*pageSize, pageSize))
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *GormRepository[T]) Update(record *T) error {
	return r.db.Save(record).Error
}

func (r *GormRepository[T]) Delete(id uint64) error {
	result := r.db.Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
