package progress

import "github.com/2beens/fitplanner/internal/planner"

// WeeklyCompletionMap tells, per weekday, whether that day's plan is fully completed.
// Days without a plan are reported as not completed.
func WeeklyCompletionMap(plans []planner.DayPlan) map[planner.Weekday]bool {
	completed := make(map[planner.Weekday]bool, len(planner.Weekdays))
	for _, day := range planner.Weekdays {
		completed[day] = false
	}
	for _, plan := range plans {
		if plan.Day.IsValid() && plan.CompletedStatus.AllCompletedAt != nil {
			completed[plan.Day] = true
		}
	}
	return completed
}

// CalculateStreaks walks the week from Sunday back to Monday.
// The current streak is the run of completed days ending on Sunday,
// the longest streak is the longest such run anywhere in the week.
func CalculateStreaks(weeklyCompletion map[planner.Weekday]bool) Streaks {
	var streaks Streaks
	run := 0
	currentOpen := true

	for i := len(planner.Weekdays) - 1; i >= 0; i-- {
		if weeklyCompletion[planner.Weekdays[i]] {
			run++
			continue
		}

		if currentOpen {
			streaks.CurrentStreak = run
			currentOpen = false
		}
		streaks.LongestStreak = max(streaks.LongestStreak, run)
		run = 0
	}

	if currentOpen {
		streaks.CurrentStreak = run
	}
	streaks.LongestStreak = max(streaks.LongestStreak, run)

	return streaks
}
