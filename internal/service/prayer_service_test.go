package service

import (
	"errors"
	"testing"
	"time"

	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/repository"
	"sofreh_salawat_backend/internal/util"
)

func TestCreatePrayerInitializesStats(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "creator@example.com")

	prayer := env.createPrayer(t, user.ID, 1000)

	if prayer.Status != model.PrayerActive {
		t.Errorf("status = %s, want %s", prayer.Status, model.PrayerActive)
	}
	if prayer.CurrentCount != 0 {
		t.Errorf("currentCount = %d, want 0", prayer.CurrentCount)
	}
	if prayer.Stats == nil {
		t.Fatal("stats row not created with the campaign")
	}
	if prayer.Stats.CompletionRate != 0 {
		t.Errorf("completionRate = %f, want 0", prayer.Stats.CompletionRate)
	}
	if prayer.Creator == nil || prayer.Creator.ID != user.ID {
		t.Error("creator not preloaded")
	}
}

func TestParticipateIncrementsCounts(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 1000)

	// Campaign already part-way through its target.
	other := env.registerUser(t, "other@example.com")
	if _, err := env.prayer.Participate(other.ID, prayer.ID, 450); err != nil {
		t.Fatalf("seed participation: %v", err)
	}

	participant := env.registerUser(t, "participant@example.com")
	p, err := env.prayer.Participate(participant.ID, prayer.ID, 50)
	if err != nil {
		t.Fatalf("participate: %v", err)
	}
	if p.Count != 50 {
		t.Errorf("participation count = %d, want 50", p.Count)
	}

	got, err := env.prayer.GetByID(prayer.ID)
	if err != nil {
		t.Fatalf("get prayer: %v", err)
	}
	if got.CurrentCount != 500 {
		t.Errorf("currentCount = %d, want 500", got.CurrentCount)
	}

	stats, _, err := env.prayer.GetStats(prayer.ID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.TotalParticipants != 2 {
		t.Errorf("totalParticipants = %d, want 2", stats.TotalParticipants)
	}
	if stats.CompletionRate != 50 {
		t.Errorf("completionRate = %f, want 50", stats.CompletionRate)
	}
}

func TestStatsDerivedFromRecordedRows(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 1000)

	// A row the service never saw in any snapshot, as if committed by
	// a concurrent request.
	other := env.registerUser(t, "other@example.com")
	hidden := &model.Participation{
		UserID:   other.ID,
		PrayerID: prayer.ID,
		Date:     model.ParticipationDay(time.Now()),
		Count:    60,
	}
	if err := env.db.Create(hidden).Error; err != nil {
		t.Fatalf("insert row: %v", err)
	}

	participant := env.registerUser(t, "participant@example.com")
	if _, err := env.prayer.Participate(participant.ID, prayer.ID, 50); err != nil {
		t.Fatalf("participate: %v", err)
	}

	stats, _, err := env.prayer.GetStats(prayer.ID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.CompletionRate != 11 {
		t.Errorf("completionRate = %f, want 11 (110 of 1000)", stats.CompletionRate)
	}
	if stats.AverageDailyCount != 110 {
		t.Errorf("averageDailyCount = %f, want 110", stats.AverageDailyCount)
	}
	if stats.TotalParticipants != 2 {
		t.Errorf("totalParticipants = %d, want 2", stats.TotalParticipants)
	}
}

func TestTotalParticipationsMatchesRows(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 1000)
	participant := env.registerUser(t, "participant@example.com")

	// Today's row already exists without ever passing through the
	// service, as a merged concurrent insert would leave it.
	existing := &model.Participation{
		UserID:   participant.ID,
		PrayerID: prayer.ID,
		Date:     model.ParticipationDay(time.Now()),
		Count:    30,
	}
	if err := env.db.Create(existing).Error; err != nil {
		t.Fatalf("insert row: %v", err)
	}

	p, err := env.prayer.Participate(participant.ID, prayer.ID, 20)
	if err != nil {
		t.Fatalf("participate: %v", err)
	}
	if p.Count != 50 {
		t.Errorf("merged count = %d, want 50", p.Count)
	}

	userStats, err := env.user.GetStats(participant.ID)
	if err != nil {
		t.Fatalf("user stats: %v", err)
	}
	if userStats.TotalParticipations != 1 {
		t.Errorf("totalParticipations = %d, want 1 (one row exists)", userStats.TotalParticipations)
	}
}

func TestParticipateSameDayMergesIntoOneRow(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 1000)
	participant := env.registerUser(t, "participant@example.com")

	if _, err := env.prayer.Participate(participant.ID, prayer.ID, 30); err != nil {
		t.Fatalf("first participate: %v", err)
	}
	if _, err := env.prayer.Participate(participant.ID, prayer.ID, 20); err != nil {
		t.Fatalf("second participate: %v", err)
	}

	var rows int64
	env.db.Model(&model.Participation{}).
		Where("user_id = ? AND prayer_id = ?", participant.ID, prayer.ID).
		Count(&rows)
	if rows != 1 {
		t.Fatalf("participation rows = %d, want 1", rows)
	}

	var p model.Participation
	if err := env.db.Where("user_id = ? AND prayer_id = ?", participant.ID, prayer.ID).
		First(&p).Error; err != nil {
		t.Fatalf("load participation: %v", err)
	}
	if p.Count != 50 {
		t.Errorf("merged count = %d, want 50", p.Count)
	}

	got, _ := env.prayer.GetByID(prayer.ID)
	if got.CurrentCount != 50 {
		t.Errorf("currentCount = %d, want 50", got.CurrentCount)
	}

	// A second same-day contribution is not a new participation.
	userStats, err := env.user.GetStats(participant.ID)
	if err != nil {
		t.Fatalf("user stats: %v", err)
	}
	if userStats.TotalParticipations != 1 {
		t.Errorf("totalParticipations = %d, want 1", userStats.TotalParticipations)
	}
	if userStats.TotalPrayers != 50 {
		t.Errorf("totalPrayers = %d, want 50", userStats.TotalPrayers)
	}
}

func TestParticipateInactivePrayer(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 100)

	paused := model.PrayerPaused
	if _, err := env.prayer.Update(prayer.ID, creator.ID, UpdatePrayerInput{Status: &paused}); err != nil {
		t.Fatalf("pause: %v", err)
	}

	_, err := env.prayer.Participate(creator.ID, prayer.ID, 10)
	if !errors.Is(err, util.ErrPrayerNotActive) {
		t.Fatalf("err = %v, want ErrPrayerNotActive", err)
	}

	got, _ := env.prayer.GetByID(prayer.ID)
	if got.CurrentCount != 0 {
		t.Errorf("currentCount changed on rejected participation: %d", got.CurrentCount)
	}
}

func TestParticipateUnknownPrayer(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "someone@example.com")

	_, err := env.prayer.Participate(user.ID, "missing-id", 10)
	if !errors.Is(err, util.ErrPrayerNotFound) {
		t.Fatalf("err = %v, want ErrPrayerNotFound", err)
	}
}

func TestCompletionRateCapsAtHundred(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 10)

	if _, err := env.prayer.Participate(creator.ID, prayer.ID, 50); err != nil {
		t.Fatalf("participate: %v", err)
	}

	stats, p, err := env.prayer.GetStats(prayer.ID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.CompletionRate != 100 {
		t.Errorf("completionRate = %f, want 100", stats.CompletionRate)
	}
	// Overshooting the target does not flip the status by itself.
	if p.Status != model.PrayerActive {
		t.Errorf("status = %s, want %s", p.Status, model.PrayerActive)
	}
}

func TestUpdateOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	stranger := env.registerUser(t, "stranger@example.com")
	prayer := env.createPrayer(t, creator.ID, 100)

	title := "عنوان جدید"
	_, err := env.prayer.Update(prayer.ID, stranger.ID, UpdatePrayerInput{Title: &title})
	if !errors.Is(err, util.ErrNotPrayerOwner) {
		t.Fatalf("err = %v, want ErrNotPrayerOwner", err)
	}

	updated, err := env.prayer.Update(prayer.ID, creator.ID, UpdatePrayerInput{Title: &title})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != title {
		t.Errorf("title = %q, want %q", updated.Title, title)
	}
}

func TestDeleteOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	stranger := env.registerUser(t, "stranger@example.com")
	prayer := env.createPrayer(t, creator.ID, 100)

	if err := env.prayer.Delete(prayer.ID, stranger.ID); !errors.Is(err, util.ErrNotPrayerOwner) {
		t.Fatalf("err = %v, want ErrNotPrayerOwner", err)
	}

	if err := env.prayer.Delete(prayer.ID, creator.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	if _, err := env.prayer.GetByID(prayer.ID); !errors.Is(err, util.ErrPrayerNotFound) {
		t.Fatalf("err = %v, want ErrPrayerNotFound after delete", err)
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 100)

	bogus := model.PrayerStatus("FINISHED")
	_, err := env.prayer.Update(prayer.ID, creator.ID, UpdatePrayerInput{Status: &bogus})
	if !errors.Is(err, util.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestListFiltersByStatusAndVisibility(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")

	env.createPrayer(t, creator.ID, 100)
	hiddenInput := CreatePrayerInput{
		Title:       "ختم خصوصی",
		Intention:   "نیت شخصی",
		TargetCount: 10,
		StartDate:   time.Now(),
	}
	hidden := false
	hiddenInput.IsPublic = &hidden
	if _, err := env.prayer.Create(creator.ID, hiddenInput); err != nil {
		t.Fatalf("create private prayer: %v", err)
	}

	prayers, total, err := env.prayer.List("", 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(prayers) != 1 {
		t.Fatalf("list returned %d/%d, want the single public campaign", len(prayers), total)
	}

	if _, _, err := env.prayer.List(model.PrayerStatus("BAD"), 1, 10); !errors.Is(err, util.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}

	completed, total, err := env.prayer.List(model.PrayerCompleted, 1, 10)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if total != 0 || len(completed) != 0 {
		t.Errorf("completed list returned %d/%d, want empty", len(completed), total)
	}
}

func TestAverageDailyCountOverDays(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 1000)
	participant := env.registerUser(t, "participant@example.com")

	if _, err := env.prayer.Participate(participant.ID, prayer.ID, 40); err != nil {
		t.Fatalf("participate: %v", err)
	}

	// Backdate the row to yesterday and contribute again today.
	yesterday := model.ParticipationDay(time.Now().AddDate(0, 0, -1))
	if err := env.db.Model(&model.Participation{}).
		Where("user_id = ? AND prayer_id = ?", participant.ID, prayer.ID).
		Update("date", yesterday).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	if _, err := env.prayer.Participate(participant.ID, prayer.ID, 60); err != nil {
		t.Fatalf("second participate: %v", err)
	}

	stats, _, err := env.prayer.GetStats(prayer.ID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.TotalParticipants != 1 {
		t.Errorf("totalParticipants = %d, want 1", stats.TotalParticipants)
	}
	if stats.AverageDailyCount != 50 {
		t.Errorf("averageDailyCount = %f, want 50", stats.AverageDailyCount)
	}

	userStats, err := env.user.GetStats(participant.ID)
	if err != nil {
		t.Fatalf("user stats: %v", err)
	}
	if userStats.TotalParticipations != 2 {
		t.Errorf("totalParticipations = %d, want 2 (one row per day)", userStats.TotalParticipations)
	}
}

func TestUpdateDoesNotRevertCurrentCount(t *testing.T) {
	env := newTestEnv(t)
	creator := env.registerUser(t, "creator@example.com")
	prayer := env.createPrayer(t, creator.ID, 100)

	// Snapshot taken before a participation lands.
	repo := repository.NewPrayerRepository(env.db)
	stale, err := repo.FindByID(prayer.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	if _, err := env.prayer.Participate(creator.ID, prayer.ID, 40); err != nil {
		t.Fatalf("participate: %v", err)
	}

	stale.Title = "عنوان تازه"
	if err := repo.Update(stale); err != nil {
		t.Fatalf("update: %v", err)
	}

	fresh, err := env.prayer.GetByID(prayer.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fresh.Title != "عنوان تازه" {
		t.Errorf("title = %q, want the updated title", fresh.Title)
	}
	if fresh.CurrentCount != 40 {
		t.Errorf("currentCount = %d, want 40 (stale save must not revert it)", fresh.CurrentCount)
	}
}
