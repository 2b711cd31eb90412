package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository[T any] struct{}

func (repo Repository[T]) Save(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Create(entity).Error
}

func (repo Repository[T]) FindById(ctx context.Context, db *gorm.DB, entity *T, id uint) error {
	return db.WithContext(ctx).Take(entity, id).Error
}

func (repo Repository[T]) FindAll(ctx context.Context, db *gorm.DB, entity *[]T) error {
	return db.WithContext(ctx).Find(entity).Error
}
