package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Truecroo/championship-scoring/logging"
)

type SpectatorScoreStorage interface {
	GetAll(ctx context.Context) ([]*SpectatorScore, error)
	// Create inserts the vote. A second vote from the same fingerprint
	// for the same (team, nomination) fails with ErrDuplicateVote; the
	// unique index is the only guard against a double-vote race, so two
	// near-simultaneous inserts yield exactly one success.
	Create(ctx context.Context, score *SpectatorScore) error
	CountVotes(ctx context.Context, teamID, nominationID string) (int64, error)
	HasVoted(ctx context.Context, teamID, nominationID, fingerprint string) (bool, error)
}

type GormSpectatorScoreStorage struct {
	DB *gorm.DB
}

func (s *GormSpectatorScoreStorage) GetAll(ctx context.Context) ([]*SpectatorScore, error) {
	var scores []*SpectatorScore
	if err := s.DB.WithContext(ctx).Order("created_at asc").Find(&scores).Error; err != nil {
		logging.Log.Errorf("SPECTATOR: failed to list spectator scores: %v", err)
		return nil, err
	}
	return scores, nil
}

func (s *GormSpectatorScoreStorage) Create(ctx context.Context, score *SpectatorScore) error {
	if score.ID == "" {
		score.ID = uuid.NewString()
	}
	err := s.DB.WithContext(ctx).Create(score).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logging.Log.Warnf("SPECTATOR: duplicate vote for team %s from fingerprint %s", score.TeamID, score.Fingerprint)
		return ErrDuplicateVote
	}
	if err != nil {
		logging.Log.Errorf("SPECTATOR: failed to create spectator score: %v", err)
		return err
	}
	return nil
}

func (s *GormSpectatorScoreStorage) CountVotes(ctx context.Context, teamID, nominationID string) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&SpectatorScore{}).
		Where("team_id = ? AND nomination_id = ?", teamID, nominationID).
		Count(&count).Error
	if err != nil {
		logging.Log.Errorf("SPECTATOR: failed to count votes for team %s: %v", teamID, err)
		return 0, err
	}
	return count, nil
}

func (s *GormSpectatorScoreStorage) HasVoted(ctx context.Context, teamID, nominationID, fingerprint string) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&SpectatorScore{}).
		Where("team_id = ? AND nomination_id = ? AND fingerprint = ?", teamID, nominationID, fingerprint).
		Count(&count).Error
	if err != nil {
		logging.Log.Errorf("SPECTATOR: failed to check vote for fingerprint %s: %v", fingerprint, err)
		return false, err
	}
	return count > 0, nil
}
