package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Truecroo/championship-scoring/logging"
)

type NominationStorage interface {
	GetAll(ctx context.Context) ([]*Nomination, error)
	Get(ctx context.Context, id string) (*Nomination, error)
	Create(ctx context.Context, nomination *Nomination) error
	Delete(ctx context.Context, id string) error
}

type GormNominationStorage struct {
	DB *gorm.DB
}

func (s *GormNominationStorage) GetAll(ctx context.Context) ([]*Nomination, error) {
	var nominations []*Nomination
	if err := s.DB.WithContext(ctx).Order("created_at asc").Find(&nominations).Error; err != nil {
		logging.Log.Errorf("NOMINATION: failed to list nominations: %v", err)
		return nil, err
	}
	return nominations, nil
}

func (s *GormNominationStorage) Get(ctx context.Context, id string) (*Nomination, error) {
	var nomination Nomination
	err := s.DB.WithContext(ctx).First(&nomination, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Log.Warnf("NOMINATION: no nomination found with ID %s", id)
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("NOMINATION: failed to get nomination %s: %v", id, err)
		return nil, err
	}
	return &nomination, nil
}

func (s *GormNominationStorage) Create(ctx context.Context, nomination *Nomination) error {
	if nomination.ID == "" {
		nomination.ID = uuid.NewString()
	}
	if err := s.DB.WithContext(ctx).Create(nomination).Error; err != nil {
		logging.Log.Errorf("NOMINATION: failed to create nomination: %v", err)
		return err
	}
	return nil
}

func (s *GormNominationStorage) Delete(ctx context.Context, id string) error {
	if err := s.DB.WithContext(ctx).Delete(&Nomination{}, "id = ?", id).Error; err != nil {
		logging.Log.Errorf("NOMINATION: failed to delete nomination %s: %v", id, err)
		return err
	}
	logging.Log.Infof("NOMINATION: deleted nomination %s", id)
	return nil
}
