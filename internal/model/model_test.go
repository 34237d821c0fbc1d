package model

import (
	"testing"
	"time"
)

func TestParticipationDayTruncatesToUTC(t *testing.T) {
	loc := time.FixedZone("IRST", int(3*time.Hour+30*time.Minute)/int(time.Second))
	local := time.Date(2025, 3, 21, 1, 15, 0, 0, loc) // 2025-03-20 21:45 UTC

	day := ParticipationDay(local)

	if day.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", day.Location())
	}
	if day.Year() != 2025 || day.Month() != 3 || day.Day() != 20 {
		t.Errorf("day = %v, want 2025-03-20", day)
	}
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 {
		t.Errorf("day not truncated to midnight: %v", day)
	}
}

func TestParticipationDayStableWithinDay(t *testing.T) {
	morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)

	if !ParticipationDay(morning).Equal(ParticipationDay(evening)) {
		t.Error("same UTC day mapped to different participation days")
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		current, target int64
		want            float64
	}{
		{0, 1000, 0},
		{500, 1000, 50},
		{1000, 1000, 100},
		{1500, 1000, 100}, // capped
		{450, 0, 0},       // degenerate target
	}

	for _, tt := range tests {
		if got := CompletionRate(tt.current, tt.target); got != tt.want {
			t.Errorf("CompletionRate(%d, %d) = %f, want %f", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestValidPrayerStatus(t *testing.T) {
	for _, s := range []PrayerStatus{PrayerActive, PrayerCompleted, PrayerPaused, PrayerCancelled} {
		if !ValidPrayerStatus(s) {
			t.Errorf("%s rejected", s)
		}
	}
	if ValidPrayerStatus("DONE") {
		t.Error("unknown status accepted")
	}
}

func TestValidContentType(t *testing.T) {
	for _, ct := range []ContentType{ContentDua, ContentHadith, ContentSalawatText, ContentSalawatAudio, ContentEtiquette} {
		if !ValidContentType(ct) {
			t.Errorf("%s rejected", ct)
		}
	}
	if ValidContentType("") {
		t.Error("empty type accepted")
	}
}
