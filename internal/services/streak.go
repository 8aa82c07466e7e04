package services

import (
	"time"

	"github.com/sarthak6789/doughjo/internal/config"
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/pkg/logger"
)

// StreakLocation resolves the reference timezone for calendar-day math.
// Misconfigured names fall back to UTC rather than failing the request.
func StreakLocation() *time.Location {
	if config.AppConfig == nil || config.AppConfig.StreakTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(config.AppConfig.StreakTimezone)
	if err != nil {
		logger.Warn().Str("tz", config.AppConfig.StreakTimezone).Msg("Invalid STREAK_TIMEZONE, using UTC")
		return time.UTC
	}
	return loc
}

// midnight truncates t to the start of its calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// daysBetween counts calendar days from a to b in loc. The dates are
// re-anchored in UTC before subtracting so DST transitions (23h or 25h
// local days) cannot skew the count.
func daysBetween(a, b time.Time, loc *time.Location) int {
	ya, ma, da := a.In(loc).Date()
	yb, mb, db := b.In(loc).Date()
	ua := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// AdvanceStreak computes the next streak state given the last recorded
// activity and the current moment:
//
//	same day   -> unchanged (idempotent re-entry)
//	yesterday  -> streak + 1
//	gap >= 2d  -> reset to 1
//
// longest never decreases. A nil lastActivity starts a fresh streak of 1.
func AdvanceStreak(current, longest int, lastActivity *time.Time, now time.Time, loc *time.Location) (int, int) {
	next := 1
	if lastActivity != nil {
		switch daysBetween(*lastActivity, now, loc) {
		case 0:
			next = current
		case 1:
			next = current + 1
		default:
			next = 1
		}
	}
	if next < 1 {
		next = 1
	}
	if next > longest {
		longest = next
	}
	return next, longest
}

// RecordActivity applies a learning action at time now to the user's streak
// state and persists it. Returns the updated profile.
func RecordActivity(userID string, now time.Time) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	loc := StreakLocation()
	streak, longest := AdvanceStreak(user.StreakDays, user.LongestStreak, user.LastActivityAt, now, loc)

	updates := map[string]interface{}{
		"streak_days":      streak,
		"longest_streak":   longest,
		"last_activity_at": now,
	}
	// A reset or a fresh streak re-anchors the start day.
	if user.CurrentStreakStart == nil || streak == 1 {
		start := midnight(now, loc)
		updates["current_streak_start"] = start
		user.CurrentStreakStart = &start
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}

	user.StreakDays = streak
	user.LongestStreak = longest
	user.LastActivityAt = &now
	return &user, nil
}
