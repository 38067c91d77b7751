package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/Truecroo/championship-scoring/logging"
)

// CurrentTeamStorage owns the singleton "now voting on" pointer. The
// admin controller writes it; the spectator read path gets the same
// instance injected, so there is no ambient global state.
type CurrentTeamStorage interface {
	Get(ctx context.Context) (*CurrentTeam, error)
	Set(ctx context.Context, teamID, nominationID *string) error
}

type GormCurrentTeamStorage struct {
	DB *gorm.DB
}

func (s *GormCurrentTeamStorage) Get(ctx context.Context) (*CurrentTeam, error) {
	var current CurrentTeam
	if err := s.DB.WithContext(ctx).First(&current, "id = ?", 1).Error; err != nil {
		logging.Log.Errorf("CURRENT: failed to read current team row: %v", err)
		return nil, err
	}
	return &current, nil
}

func (s *GormCurrentTeamStorage) Set(ctx context.Context, teamID, nominationID *string) error {
	// Column map rather than a struct update so nil clears the pointer.
	err := s.DB.WithContext(ctx).Model(&CurrentTeam{}).
		Where("id = ?", 1).
		Updates(map[string]any{"team_id": teamID, "nomination_id": nominationID}).Error
	if err != nil {
		logging.Log.Errorf("CURRENT: failed to set current team: %v", err)
		return err
	}
	return nil
}
