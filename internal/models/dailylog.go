// Package models defines the GORM models persisted by farmos.
package models

import "time"

// DailyLog captures one day's farm plan, actuals, compliance, yield, time
// accounting, and next-day outlook. Exactly one row exists per date; content
// fields are nullable free text and are overwritten wholesale on resubmission.
type DailyLog struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Date string `gorm:"size:10;uniqueIndex;not null" json:"date"`

	PlanHarvest    *string `gorm:"type:text" json:"plan_harvest"`
	PlanPlant      *string `gorm:"type:text" json:"plan_plant"`
	PlanDeliveries *string `gorm:"type:text" json:"plan_deliveries"`
	PlanOther      *string `gorm:"type:text" json:"plan_other"`

	DoneHarvest    *string `gorm:"type:text" json:"done_harvest"`
	DonePlant      *string `gorm:"type:text" json:"done_plant"`
	DoneDeliveries *string `gorm:"type:text" json:"done_deliveries"`
	DoneOther      *string `gorm:"type:text" json:"done_other"`

	SopComplete *string `gorm:"type:text" json:"sop_complete"`
	SopMissed   *string `gorm:"type:text" json:"sop_missed"`
	SopWhy      *string `gorm:"type:text" json:"sop_why"`

	YieldOnTarget  *string `gorm:"type:text" json:"yield_on_target"`
	YieldCrop      *string `gorm:"type:text" json:"yield_crop"`
	YieldOffReason *string `gorm:"type:text" json:"yield_off_reason"`
	YieldAction    *string `gorm:"type:text" json:"yield_action"`

	TimeStart *string `gorm:"type:text" json:"time_start"`
	TimeEnd   *string `gorm:"type:text" json:"time_end"`
	TimeDrain *string `gorm:"type:text" json:"time_drain"`
	TimeWhy   *string `gorm:"type:text" json:"time_why"`

	TomorrowHarvest *string `gorm:"type:text" json:"tomorrow_harvest"`
	TomorrowPlant   *string `gorm:"type:text" json:"tomorrow_plant"`
	TomorrowFocus   *string `gorm:"type:text" json:"tomorrow_focus"`
	TomorrowRisk    *string `gorm:"type:text" json:"tomorrow_risk"`

	Initials *string `gorm:"type:text" json:"initials"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name used by the original deployment.
func (DailyLog) TableName() string { return "daily_logs" }

// ContentColumns lists every column an upsert is allowed to overwrite.
// id, date, and created_at are deliberately excluded: the surrogate key and
// creation timestamp survive resubmissions for the same date.
func ContentColumns() []string {
	return []string{
		"plan_harvest", "plan_plant", "plan_deliveries", "plan_other",
		"done_harvest", "done_plant", "done_deliveries", "done_other",
		"sop_complete", "sop_missed", "sop_why",
		"yield_on_target", "yield_crop", "yield_off_reason", "yield_action",
		"time_start", "time_end", "time_drain", "time_why",
		"tomorrow_harvest", "tomorrow_plant", "tomorrow_focus", "tomorrow_risk",
		"initials",
	}
}
