package model

import "time"

type PrayerStatus string

const (
	PrayerActive    PrayerStatus = "ACTIVE"
	PrayerCompleted PrayerStatus = "COMPLETED"
	PrayerPaused    PrayerStatus = "PAUSED"
	PrayerCancelled PrayerStatus = "CANCELLED"
)

// ValidPrayerStatus reports whether s is one of the enumerated campaign states.
func ValidPrayerStatus(s PrayerStatus) bool {
	switch s {
	case PrayerActive, PrayerCompleted, PrayerPaused, PrayerCancelled:
		return true
	}
	return false
}

// Prayer is a salawat campaign: a counting effort toward a numeric target.
// swagger:model Prayer
type Prayer struct {
	UUIDBase
	Title        string       `gorm:"size:200;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description,omitempty"`
	Intention    string       `gorm:"size:500;not null" json:"intention"`
	TargetCount  int64        `gorm:"not null" json:"targetCount"`
	CurrentCount int64        `gorm:"not null;default:0" json:"currentCount"`
	StartDate    time.Time    `gorm:"not null" json:"startDate"`
	EndDate      *time.Time   `json:"endDate,omitempty"`
	Status       PrayerStatus `gorm:"size:20;default:'ACTIVE';index" json:"status"`
	IsPublic     bool         `gorm:"default:true;index" json:"isPublic"`
	CreatedBy    string       `gorm:"type:varchar(36);not null;index" json:"createdBy"`

	Creator        *User           `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Stats          *PrayerStats    `gorm:"foreignKey:PrayerID" json:"prayerStats,omitempty"`
	Participations []Participation `gorm:"foreignKey:PrayerID" json:"participations,omitempty"`
}

func (Prayer) TableName() string {
	return "prayers"
}
