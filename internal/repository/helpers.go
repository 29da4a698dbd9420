package repository

import (
	"context"
	"errors"

	"patient-transport-backend/internal/apperror"

	"gorm.io/gorm"
)

// findByID loads the record with the given primary key into a new T
func findByID[T any](ctx context.Context, db *gorm.DB, id uint, notFound string) (*T, error) {
	var record T
	err := db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(notFound)
		}
		return nil, err
	}
	return &record, nil
}

// exists reports whether any row of model matches the condition,
// ignoring the row whose id is excludeID (0 ignores nothing)
func exists(ctx context.Context, db *gorm.DB, model interface{}, excludeID uint, query string, args ...interface{}) (bool, error) {
	var count int64
	q := db.WithContext(ctx).Model(model).Where(query, args...)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// latestNames returns the column values of the newest rows, newest first
func latestNames(ctx context.Context, db *gorm.DB, model interface{}, column string, limit int) ([]string, error) {
	var names []string
	err := db.WithContext(ctx).Model(model).
		Order("id DESC").
		Limit(limit).
		Pluck(column, &names).Error
	return names, err
}

func count(ctx context.Context, db *gorm.DB, model interface{}) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(model).Count(&n).Error
	return n, err
}

// writeError turns a unique index violation into a conflict.
// The dialector only reports gorm.ErrDuplicatedKey with TranslateError enabled.
func writeError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("record already exists")
	}
	return err
}
