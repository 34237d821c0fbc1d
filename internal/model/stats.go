package model

// PrayerStats is a denormalized read model over participations; it is
// recomputed inside the participation transaction and must always be
// derivable from the underlying rows.
// swagger:model PrayerStats
type PrayerStats struct {
	UUIDBase
	PrayerID          string  `gorm:"type:varchar(36);not null;uniqueIndex" json:"prayerId"`
	TotalParticipants int64   `gorm:"not null;default:0" json:"totalParticipants"`
	AverageDailyCount float64 `gorm:"not null;default:0" json:"averageDailyCount"`
	CompletionRate    float64 `gorm:"not null;default:0" json:"completionRate"`
}

func (PrayerStats) TableName() string {
	return "prayer_stats"
}

// swagger:model UserStats
type UserStats struct {
	UUIDBase
	UserID              string `gorm:"type:varchar(36);not null;uniqueIndex" json:"userId"`
	TotalPrayers        int64  `gorm:"not null;default:0" json:"totalPrayers"`
	TotalParticipations int64  `gorm:"not null;default:0" json:"totalParticipations"`
	CompletedPrayers    int64  `gorm:"not null;default:0" json:"completedPrayers"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

// CompletionRate is min(current/target, 1) * 100.
func CompletionRate(current, target int64) float64 {
	if target <= 0 {
		return 0
	}
	rate := float64(current) / float64(target)
	if rate > 1 {
		rate = 1
	}
	return rate * 100
}
