package planner

const (
	minSets     = 1
	maxSets     = 5
	minReps     = 5
	maxReps     = 25
	minDuration = 30
	maxDuration = 300

	increaseAbovePct = 80
	decreaseBelowPct = 40
)

// AdjustIntensity returns a copy of the plan with its exercises made harder
// when more than 80% of them were completed, or easier when less than 40% were.
// Adjusted values stay within sets [1,5], reps [5,25], duration [30,300]s.
// Timed exercises (reps == 0) keep zero reps.
func AdjustIntensity(plan DayPlan) DayPlan {
	adjusted := plan
	adjusted.Exercises = make([]Exercise, len(plan.Exercises))
	copy(adjusted.Exercises, plan.Exercises)

	if len(plan.Exercises) == 0 {
		return adjusted
	}

	rate := plan.ExerciseCompletionRate()
	var step int
	switch {
	case rate > increaseAbovePct:
		step = 1
	case rate < decreaseBelowPct:
		step = -1
	default:
		return adjusted
	}

	for i := range adjusted.Exercises {
		ex := &adjusted.Exercises[i]
		ex.Sets = clamp(ex.Sets+step, minSets, maxSets)
		if ex.Reps > 0 {
			ex.Reps = clamp(ex.Reps+2*step, minReps, maxReps)
		}
		if ex.Duration != nil {
			duration := clamp(*ex.Duration+30*step, minDuration, maxDuration)
			ex.Duration = &duration
		}
	}

	return adjusted
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
