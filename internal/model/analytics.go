// internal/model/analytics.go
package model

import "time"

// MonthLabelLayout は月別集計の表示ラベル形式です (例: "Jan 2025")
const MonthLabelLayout = "Jan 2006"

// AnalyticsWindow は月別集計の対象期間です (作成日時が直近365日以内)
const AnalyticsWindow = 365 * 24 * time.Hour

// AnalyticsSummary はダッシュボード用の集計結果です
type AnalyticsSummary struct {
	TotalGoals            int64            `json:"total_goals"`
	CompletedGoals        int64            `json:"completed_goals"`
	TotalHours            float64          `json:"total_hours"`
	GoalStatusBreakdown   map[string]int64 `json:"goal_status_breakdown"`
	ResourceTypeBreakdown map[string]int64 `json:"resource_type_breakdown"`
	SkillHoursBreakdown   []SkillHours     `json:"skill_hours_breakdown"`
	HoursByMonthData      []MonthlyHours   `json:"hours_by_month_data"`
}

// SkillHours はスキル名ごとの学習時間合計です
type SkillHours struct {
	Skill string  `json:"skill"`
	Hours float64 `json:"hours"`
}

// MonthlyHours は作成月ごとの学習時間合計です
type MonthlyHours struct {
	Month      string  `json:"month"`
	TotalHours float64 `json:"total_hours"`
}

// GoalTotals は件数・完了件数・合計時間の集計行です
type GoalTotals struct {
	TotalGoals     int64
	CompletedGoals int64
	TotalHours     float64
}

// LabelCount は GROUP BY の結果 (値と件数) です
type LabelCount struct {
	Label string
	Count int64
}

// GoalHours は月別集計に使う (作成日時, 学習時間) の行です
type GoalHours struct {
	CreatedAt  time.Time
	HoursSpent float64
}
