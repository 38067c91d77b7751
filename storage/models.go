package storage

import "time"

// Nomination is a competition category. Deleting one cascades to its
// teams and their scores through the FK constraints created at migration.
type Nomination struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Team is a competitor entry belonging to exactly one nomination.
// DisplayOrder is admin-settable and used only for UI ordering.
type Team struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	NominationID string    `gorm:"type:uuid;not null;index" json:"nomination_id"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`

	Nomination *Nomination `gorm:"foreignKey:NominationID;constraint:OnDelete:CASCADE" json:"-"`
}

// JudgeScore is one judge's evaluation of one team. The unique index on
// (judge_id, team_id) is the upsert key: a judge resubmitting replaces
// their previous row instead of accumulating duplicates. Criterion score
// columns are nullable; a nil score means the judge has not filled that
// slider yet and it is excluded from the weighted average.
type JudgeScore struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	JudgeID      string `gorm:"not null;uniqueIndex:idx_scores_judge_team"`
	NominationID string `gorm:"type:uuid;not null;index"`
	TeamID       string `gorm:"type:uuid;not null;uniqueIndex:idx_scores_judge_team"`

	ChoreographyScore   *float64
	ChoreographyComment string
	TechniqueScore      *float64
	TechniqueComment    string
	ArtistryScore       *float64
	ArtistryComment     string
	OverallScore        *float64
	OverallComment      string

	WeightedAverage float64 `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Nomination *Nomination `gorm:"foreignKey:NominationID;constraint:OnDelete:CASCADE"`
	Team       *Team       `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// SpectatorScore is one spectator's single rating of one team. The unique
// index on (team_id, nomination_id, fingerprint) is the sole guard
// against double voting: a duplicate insert fails, it is never upserted.
type SpectatorScore struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	NominationID string    `gorm:"type:uuid;not null;uniqueIndex:idx_spectator_once" json:"nomination_id"`
	TeamID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_spectator_once" json:"team_id"`
	Score        float64   `gorm:"not null" json:"score"`
	Fingerprint  string    `gorm:"not null;uniqueIndex:idx_spectator_once" json:"fingerprint"`
	CreatedAt    time.Time `json:"created_at"`

	Nomination *Nomination `gorm:"foreignKey:NominationID;constraint:OnDelete:CASCADE" json:"-"`
	Team       *Team       `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"-"`
}

// CurrentTeam is a singleton row (id = 1) pointing spectators at the
// team currently on stage. Both references are nil between performances.
type CurrentTeam struct {
	ID           int     `gorm:"primaryKey"`
	TeamID       *string `gorm:"type:uuid"`
	NominationID *string `gorm:"type:uuid"`
	UpdatedAt    time.Time
}

func (CurrentTeam) TableName() string { return "current_team" }

// JudgeAuth holds a judge's login credentials. IDs are a small fixed set
// seeded by the operator, not created through the API.
type JudgeAuth struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
}

func (JudgeAuth) TableName() string { return "judge_auth" }

// AdminAuth holds the single admin password hash (id = 1).
type AdminAuth struct {
	ID           int    `gorm:"primaryKey"`
	PasswordHash string `gorm:"not null"`
}

func (AdminAuth) TableName() string { return "admin_auth" }
