package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Truecroo/championship-scoring/logging"
)

// criterionColumns are the columns an update-by-id replaces: the raw
// criterion values, comments and the derived average. The upsert path
// additionally refreshes nomination_id and updated_at; the upsert key
// (judge_id, team_id) and the row id stay untouched either way.
var criterionColumns = []string{
	"choreography_score", "choreography_comment",
	"technique_score", "technique_comment",
	"artistry_score", "artistry_comment",
	"overall_score", "overall_comment",
	"weighted_average",
}

var upsertColumns = append([]string{"nomination_id", "updated_at"}, criterionColumns...)

type JudgeScoreStorage interface {
	GetAll(ctx context.Context) ([]*JudgeScore, error)
	Get(ctx context.Context, id string) (*JudgeScore, error)
	// Upsert inserts the score or, when a row for (judge_id, team_id)
	// already exists, replaces its values. The returned row carries the
	// canonical id either way.
	Upsert(ctx context.Context, score *JudgeScore) (*JudgeScore, error)
	// Update replaces the criterion values of the row with score.ID.
	// Returns ErrNotFound when no such row exists.
	Update(ctx context.Context, score *JudgeScore) error
	Delete(ctx context.Context, id string) error
}

type GormJudgeScoreStorage struct {
	DB *gorm.DB
}

func (s *GormJudgeScoreStorage) GetAll(ctx context.Context) ([]*JudgeScore, error) {
	var scores []*JudgeScore
	if err := s.DB.WithContext(ctx).Order("created_at asc").Find(&scores).Error; err != nil {
		logging.Log.Errorf("SCORE: failed to list judge scores: %v", err)
		return nil, err
	}
	return scores, nil
}

func (s *GormJudgeScoreStorage) Get(ctx context.Context, id string) (*JudgeScore, error) {
	var score JudgeScore
	err := s.DB.WithContext(ctx).First(&score, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("SCORE: failed to get judge score %s: %v", id, err)
		return nil, err
	}
	return &score, nil
}

func (s *GormJudgeScoreStorage) Upsert(ctx context.Context, score *JudgeScore) (*JudgeScore, error) {
	if score.ID == "" {
		score.ID = uuid.NewString()
	}

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "judge_id"}, {Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(score).Error
	if err != nil {
		logging.Log.Errorf("SCORE: failed to upsert score for judge %s team %s: %v", score.JudgeID, score.TeamID, err)
		return nil, err
	}

	// On the conflict path the generated id was discarded; read the row
	// back so the caller always gets the persisted identifier.
	var persisted JudgeScore
	err = s.DB.WithContext(ctx).
		First(&persisted, "judge_id = ? AND team_id = ?", score.JudgeID, score.TeamID).Error
	if err != nil {
		logging.Log.Errorf("SCORE: failed to read back upserted score: %v", err)
		return nil, err
	}
	return &persisted, nil
}

func (s *GormJudgeScoreStorage) Update(ctx context.Context, score *JudgeScore) error {
	res := s.DB.WithContext(ctx).Model(&JudgeScore{}).
		Where("id = ?", score.ID).
		Select(criterionColumns).
		Updates(score)
	if res.Error != nil {
		logging.Log.Errorf("SCORE: failed to update judge score %s: %v", score.ID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		logging.Log.Warnf("SCORE: no judge score found with ID %s", score.ID)
		return ErrNotFound
	}
	return nil
}

func (s *GormJudgeScoreStorage) Delete(ctx context.Context, id string) error {
	if err := s.DB.WithContext(ctx).Delete(&JudgeScore{}, "id = ?", id).Error; err != nil {
		logging.Log.Errorf("SCORE: failed to delete judge score %s: %v", id, err)
		return err
	}
	logging.Log.Infof("SCORE: deleted judge score %s", id)
	return nil
}
