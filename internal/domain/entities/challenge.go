package entities

import "time"

// Challenge representa um desafio gamificado disponível para as fazendas
type Challenge struct {
	ID           int       `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Title        string    `json:"title" gorm:"column:title"`
	Description  string    `json:"description" gorm:"column:description"`
	Points       int       `json:"points" gorm:"column:points"`
	StartDate    time.Time `json:"start_date" gorm:"column:startDate;type:date"`
	EndDate      time.Time `json:"end_date" gorm:"column:endDate;type:date"`
	TargetMetric string    `json:"target_metric,omitempty" gorm:"column:targetMetric"`
	TargetValue  int       `json:"target_value,omitempty" gorm:"column:targetValue"`
	Category     string    `json:"category" gorm:"column:category;default:production"`
	IsActive     bool      `json:"is_active" gorm:"column:isActive;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:createdAt"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// ChallengeProgress representa o progresso de uma fazenda em um desafio
type ChallengeProgress struct {
	ID              int        `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	ChallengeID     int        `json:"challenge_id" gorm:"column:challengeId"`
	FarmID          int        `json:"farm_id" gorm:"column:farmId"`
	ProgressPercent int        `json:"progress_percent" gorm:"column:progressPercent;default:0"`
	PointsEarned    int        `json:"points_earned" gorm:"column:pointsEarned;default:0"`
	Completed       bool       `json:"completed" gorm:"column:completed;default:false"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" gorm:"column:completedAt"`
	CreatedAt       time.Time  `json:"created_at" gorm:"column:createdAt"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"column:updatedAt"`

	// Relações
	Challenge Challenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
}

func (ChallengeProgress) TableName() string {
	return "challenge_progress"
}
