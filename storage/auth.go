package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Truecroo/championship-scoring/logging"
)

type AuthStorage interface {
	// GetJudge returns nil without error when the judge id is unknown.
	GetJudge(ctx context.Context, id string) (*JudgeAuth, error)
	GetAdmin(ctx context.Context) (*AdminAuth, error)
}

type GormAuthStorage struct {
	DB *gorm.DB
}

func (s *GormAuthStorage) GetJudge(ctx context.Context, id string) (*JudgeAuth, error) {
	var judge JudgeAuth
	err := s.DB.WithContext(ctx).First(&judge, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("AUTH: failed to get judge %s: %v", id, err)
		return nil, err
	}
	return &judge, nil
}

func (s *GormAuthStorage) GetAdmin(ctx context.Context) (*AdminAuth, error) {
	var admin AdminAuth
	err := s.DB.WithContext(ctx).First(&admin, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("AUTH: failed to get admin credentials: %v", err)
		return nil, err
	}
	return &admin, nil
}
