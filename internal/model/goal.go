// internal/model/goal.go
package model

import (
	"time"
)

// ステータス・リソース種別の既定値
const (
	GoalStatusStarted   = "Started"
	GoalStatusCompleted = "Completed"

	DefaultResourceType     = "Course"
	DefaultDifficultyRating = 3
)

// GoalFields は作成・参照の両方で共有する基本フィールド群です。
// 作成リクエストではそのまま埋め込み、全項目必須として検証されます。
type GoalFields struct {
	SkillName        string `gorm:"not null;index" json:"skill_name" validate:"required,max=100"`
	ResourceType     string `gorm:"not null;default:Course" json:"resource_type" validate:"required,max=50"`
	Platform         string `gorm:"not null" json:"platform" validate:"required,max=100"`
	TargetHours      int    `gorm:"not null" json:"target_hours" validate:"required,min=1"`
	DifficultyRating int    `gorm:"not null;default:3" json:"difficulty_rating" validate:"required,min=1,max=10"`
}

// Goal は学習目標を表します (参照用の形もこの構造体)
type Goal struct {
	ID uint `gorm:"primaryKey" json:"id"`
	GoalFields
	Status     string    `gorm:"not null;default:Started" json:"status"`
	HoursSpent float64   `gorm:"not null;default:0" json:"hours_spent"`
	Notes      string    `gorm:"not null;default:''" json:"notes"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func (Goal) TableName() string {
	return "goals"
}

// NewGoal は作成リクエストから保存前の Goal を組み立てます。IDはDBで採番されます。
func NewGoal(req *CreateGoalRequest, now time.Time) *Goal {
	return &Goal{
		GoalFields: req.GoalFields,
		Status:     GoalStatusStarted,
		HoursSpent: 0,
		Notes:      "",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// 目標作成リクエストDTO
type CreateGoalRequest struct {
	GoalFields
}

// 目標更新（部分）リクエストDTO
// nil のフィールドは「指定なし」として扱い、保存済みの値を変更しません。
type UpdateGoalRequest struct {
	SkillName        *string  `json:"skill_name,omitempty" validate:"omitnil,min=1,max=100"`
	ResourceType     *string  `json:"resource_type,omitempty" validate:"omitnil,min=1,max=50"`
	Platform         *string  `json:"platform,omitempty" validate:"omitnil,min=1,max=100"`
	TargetHours      *int     `json:"target_hours,omitempty" validate:"omitnil,min=1"`
	DifficultyRating *int     `json:"difficulty_rating,omitempty" validate:"omitnil,min=1,max=10"`
	Status           *string  `json:"status,omitempty" validate:"omitnil,min=1,max=50"`
	HoursSpent       *float64 `json:"hours_spent,omitempty" validate:"omitnil,min=0"`
	Notes            *string  `json:"notes,omitempty" validate:"omitnil,max=5000"`
}

// ApplyGoalUpdate は保存済みの Goal に指定されたフィールドだけを反映した新しい値を返します。
// stored 自体は変更しません。ID と CreatedAt は常に保存済みの値のままです。
func ApplyGoalUpdate(stored Goal, upd *UpdateGoalRequest, now time.Time) Goal {
	merged := stored
	if upd != nil {
		if upd.SkillName != nil {
			merged.SkillName = *upd.SkillName
		}
		if upd.ResourceType != nil {
			merged.ResourceType = *upd.ResourceType
		}
		if upd.Platform != nil {
			merged.Platform = *upd.Platform
		}
		if upd.TargetHours != nil {
			merged.TargetHours = *upd.TargetHours
		}
		if upd.DifficultyRating != nil {
			merged.DifficultyRating = *upd.DifficultyRating
		}
		if upd.Status != nil {
			merged.Status = *upd.Status
		}
		if upd.HoursSpent != nil {
			merged.HoursSpent = *upd.HoursSpent
		}
		if upd.Notes != nil {
			merged.Notes = *upd.Notes
		}
	}
	merged.UpdatedAt = now
	return merged
}

// ListGoalsQuery は一覧取得のクエリパラメータです
type ListGoalsQuery struct {
	Skip  int `json:"skip" validate:"min=0"`
	Limit int `json:"limit" validate:"min=1"`
}
