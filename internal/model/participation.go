package model

import "time"

// Participation accumulates one user's contribution to one campaign on
// one calendar day (UTC). The composite unique index is what makes the
// per-day upsert safe under concurrent requests.
// swagger:model Participation
type Participation struct {
	UUIDBase
	UserID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_participation_user_prayer_date" json:"userId"`
	PrayerID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_participation_user_prayer_date" json:"prayerId"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_participation_user_prayer_date" json:"date"`
	Count    int64     `gorm:"not null" json:"count"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Prayer *Prayer `gorm:"foreignKey:PrayerID" json:"prayer,omitempty"`
}

func (Participation) TableName() string {
	return "participations"
}

// ParticipationDay truncates t to its UTC calendar day.
func ParticipationDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
