package meal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Create(ctx context.Context, m Meal) (Meal, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return Meal{}, err
	}
	return m, nil
}

func (s *GormStore) ListByOwner(ctx context.Context, ownerID string) ([]Meal, error) {
	var meals []Meal
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, ErrNoMeals
	}
	return meals, nil
}

func (s *GormStore) GetOne(ctx context.Context, ownerID, id string) (Meal, error) {
	var m Meal
	if err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Meal{}, ErrNotFound
		}
		return Meal{}, err
	}
	return m, nil
}

func (s *GormStore) Update(ctx context.Context, ownerID, id string, f UpdateFields) error {
	values := map[string]any{}
	if f.Name != nil {
		values["name"] = *f.Name
	}
	if f.Description != nil {
		values["description"] = *f.Description
	}
	if f.Date != nil {
		values["date"] = *f.Date
	}
	if f.IsDiet != nil {
		values["is_diet"] = *f.IsDiet
	}
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	// Zero rows matched is not an error; see Store.
	return s.DB.WithContext(ctx).
		Model(&Meal{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(values).Error
}

func (s *GormStore) Delete(ctx context.Context, ownerID, id string) error {
	return s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&Meal{}).Error
}

func (s *GormStore) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&Meal{}).
		Where("user_id = ?", ownerID).
		Count(&n).Error
	return n, err
}

func (s *GormStore) CountByOwnerAndDiet(ctx context.Context, ownerID string, isDiet bool) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&Meal{}).
		Where("user_id = ? AND is_diet = ?", ownerID, isDiet).
		Count(&n).Error
	return n, err
}

func (s *GormStore) ListDietDatesAsc(ctx context.Context, ownerID string) ([]time.Time, error) {
	var dates []time.Time
	err := s.DB.WithContext(ctx).
		Model(&Meal{}).
		Where("user_id = ? AND is_diet = ?", ownerID, true).
		Order("date asc").
		Pluck("date", &dates).Error
	return dates, err
}
