package repository

import (
	"context"
	"strconv"

	"weddingshare/internal/domain"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	var s domain.Setting
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&s).Error; err != nil {
		return "", err
	}
	return s.Value, nil
}

// GetBool reads a boolean setting, returning fallback when the row is
// missing or unparsable.
func (r *SettingRepository) GetBool(ctx context.Context, key string, fallback bool) bool {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
