package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Truecroo/championship-scoring/logging"
)

type TeamStorage interface {
	// GetAll returns every team, or only one nomination's teams when
	// nominationID is non-empty, ordered for display.
	GetAll(ctx context.Context, nominationID string) ([]*Team, error)
	Get(ctx context.Context, id string) (*Team, error)
	Create(ctx context.Context, team *Team) error
	Delete(ctx context.Context, id string) error
	// Reorder rewrites display_order for the given teams in one batch,
	// in the order the ids are listed.
	Reorder(ctx context.Context, ids []string) error
}

type GormTeamStorage struct {
	DB *gorm.DB
}

func (s *GormTeamStorage) GetAll(ctx context.Context, nominationID string) ([]*Team, error) {
	query := s.DB.WithContext(ctx).Order("display_order asc").Order("created_at asc")
	if nominationID != "" {
		query = query.Where("nomination_id = ?", nominationID)
	}

	var teams []*Team
	if err := query.Find(&teams).Error; err != nil {
		logging.Log.Errorf("TEAM: failed to list teams: %v", err)
		return nil, err
	}
	return teams, nil
}

func (s *GormTeamStorage) Get(ctx context.Context, id string) (*Team, error) {
	var team Team
	err := s.DB.WithContext(ctx).First(&team, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Log.Warnf("TEAM: no team found with ID %s", id)
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("TEAM: failed to get team %s: %v", id, err)
		return nil, err
	}
	return &team, nil
}

func (s *GormTeamStorage) Create(ctx context.Context, team *Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	if err := s.DB.WithContext(ctx).Create(team).Error; err != nil {
		logging.Log.Errorf("TEAM: failed to create team: %v", err)
		return err
	}
	return nil
}

func (s *GormTeamStorage) Delete(ctx context.Context, id string) error {
	if err := s.DB.WithContext(ctx).Delete(&Team{}, "id = ?", id).Error; err != nil {
		logging.Log.Errorf("TEAM: failed to delete team %s: %v", id, err)
		return err
	}
	logging.Log.Infof("TEAM: deleted team %s", id)
	return nil
}

func (s *GormTeamStorage) Reorder(ctx context.Context, ids []string) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&Team{}).Where("id = ?", id).Update("display_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logging.Log.Errorf("TEAM: failed to reorder %d teams: %v", len(ids), err)
		return err
	}
	return nil
}
