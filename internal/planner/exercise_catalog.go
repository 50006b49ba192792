package planner

const (
	MuscleGroupCardio      = "cardiovascular"
	MuscleGroupFullBody    = "full_body"
	MuscleGroupChest       = "chest"
	MuscleGroupBack        = "back"
	MuscleGroupLegs        = "legs"
	MuscleGroupShoulders   = "shoulders"
	MuscleGroupArms        = "arms"
	MuscleGroupCore        = "core"
	MuscleGroupFlexibility = "flexibility"
)

type exerciseTemplate struct {
	key          string
	name         string
	sets         int
	reps         int
	duration     int // seconds, 0 when rep based only
	instructions string
}

// exerciseCatalog lists the exercises each focus area expands into.
var exerciseCatalog = map[string][]exerciseTemplate{
	MuscleGroupCardio: {
		{
			key: "jumping-jacks", name: "Jumping Jacks", sets: 3, reps: 30,
			instructions: "Jump while spreading the legs and raising the arms overhead, then return to standing. Keep a steady rhythm.",
		},
		{
			key: "high-knees", name: "High Knees", sets: 3, reps: 20, duration: 45,
			instructions: "Run in place driving the knees up to hip height, pump the arms and land on the balls of the feet.",
		},
		{
			key: "burpees", name: "Burpees", sets: 3, reps: 10,
			instructions: "Squat, kick the feet back into a plank, do a push-up, jump the feet in and explode upward.",
		},
	},
	MuscleGroupFullBody: {
		{
			key: "mountain-climbers", name: "Mountain Climbers", sets: 3, reps: 20,
			instructions: "From a high plank, drive the knees alternately toward the chest, keeping the hips level.",
		},
		{
			key: "squat-thrusts", name: "Squat Thrusts", sets: 3, reps: 12,
			instructions: "Squat down, place the hands on the floor, jump the feet back to a plank and return to standing.",
		},
		{
			key: "kettlebell-swings", name: "Kettlebell Swings", sets: 3, reps: 15,
			instructions: "Hinge at the hips and swing the kettlebell to chest height using hip drive, not the arms.",
		},
	},
	MuscleGroupChest: {
		{
			key: "push-ups", name: "Push-ups", sets: 3, reps: 12,
			instructions: "Hands shoulder-width apart, lower the chest to the floor keeping the body straight, press back up.",
		},
		{
			key: "bench-press", name: "Bench Press", sets: 4, reps: 8,
			instructions: "Lower the bar to mid-chest under control and press it back up, feet flat and shoulder blades retracted.",
		},
		{
			key: "chest-fly", name: "Dumbbell Chest Fly", sets: 3, reps: 12,
			instructions: "Lying on a bench, open the arms wide with a slight elbow bend and bring the dumbbells together above the chest.",
		},
	},
	MuscleGroupBack: {
		{
			key: "pull-ups", name: "Pull-ups", sets: 3, reps: 8,
			instructions: "Hang with an overhand grip and pull until the chin clears the bar, lower slowly.",
		},
		{
			key: "bent-over-rows", name: "Bent-over Rows", sets: 4, reps: 10,
			instructions: "Hinge forward with a flat back and row the weight toward the lower ribs, squeezing the shoulder blades.",
		},
		{
			key: "superman", name: "Superman Hold", sets: 3, reps: 12,
			instructions: "Lie face down and lift the arms, chest and legs off the floor, hold briefly and lower.",
		},
	},
	MuscleGroupLegs: {
		{
			key: "squats", name: "Squats", sets: 4, reps: 12,
			instructions: "Feet shoulder-width apart, sit back until the thighs are parallel to the floor, drive up through the heels.",
		},
		{
			key: "lunges", name: "Walking Lunges", sets: 3, reps: 12,
			instructions: "Step forward and lower the back knee toward the floor, push off and step through with the other leg.",
		},
		{
			key: "calf-raises", name: "Calf Raises", sets: 3, reps: 15,
			instructions: "Rise onto the toes as high as possible, pause, and lower the heels slowly.",
		},
	},
	MuscleGroupShoulders: {
		{
			key: "overhead-press", name: "Overhead Press", sets: 4, reps: 8,
			instructions: "Press the weight from shoulder height to full lockout overhead without arching the lower back.",
		},
		{
			key: "lateral-raises", name: "Lateral Raises", sets: 3, reps: 12,
			instructions: "Raise the dumbbells out to the sides to shoulder height with a slight elbow bend, lower slowly.",
		},
		{
			key: "pike-push-ups", name: "Pike Push-ups", sets: 3, reps: 10,
			instructions: "From a pike position with hips high, bend the elbows to lower the head toward the floor and press up.",
		},
	},
	MuscleGroupArms: {
		{
			key: "bicep-curls", name: "Bicep Curls", sets: 3, reps: 12,
			instructions: "Keep the elbows at the sides and curl the weights to the shoulders, lower under control.",
		},
		{
			key: "tricep-dips", name: "Tricep Dips", sets: 3, reps: 10,
			instructions: "Using a bench behind you, lower the body by bending the elbows to 90 degrees and press back up.",
		},
		{
			key: "hammer-curls", name: "Hammer Curls", sets: 3, reps: 12,
			instructions: "Hold the dumbbells with a neutral grip and curl them up without swinging the torso.",
		},
	},
	MuscleGroupCore: {
		{
			key: "plank", name: "Plank", sets: 3, duration: 45,
			instructions: "Hold a straight line from head to heels on the forearms, brace the abs and breathe steadily.",
		},
		{
			key: "crunches", name: "Crunches", sets: 3, reps: 20,
			instructions: "Lying on the back with knees bent, curl the shoulders off the floor using the abs.",
		},
		{
			key: "russian-twists", name: "Russian Twists", sets: 3, reps: 16,
			instructions: "Sit with the feet raised, lean back slightly and rotate the torso side to side.",
		},
	},
	MuscleGroupFlexibility: {
		{
			key: "hamstring-stretch", name: "Hamstring Stretch", sets: 2, duration: 30,
			instructions: "Sit with one leg extended and reach toward the toes keeping the back long. Switch legs.",
		},
		{
			key: "hip-flexor-stretch", name: "Hip Flexor Stretch", sets: 2, duration: 30,
			instructions: "Kneel in a lunge position and gently push the hips forward until a stretch is felt. Switch sides.",
		},
		{
			key: "cat-cow", name: "Cat-Cow", sets: 2, reps: 10,
			instructions: "On all fours, alternate between arching and rounding the spine slowly with the breath.",
		},
	},
}

// focusAreas lists, per goal, the muscle groups trained on each weekday (Monday first).
var focusAreas = map[Goal][7][]string{
	GoalWeightLoss: {
		{MuscleGroupCardio, MuscleGroupFullBody},
		{MuscleGroupCore, MuscleGroupFlexibility},
		{MuscleGroupCardio, MuscleGroupLegs},
		{MuscleGroupBack, MuscleGroupArms},
		{MuscleGroupCardio, MuscleGroupCore},
		{MuscleGroupFullBody, MuscleGroupShoulders},
		{MuscleGroupFlexibility},
	},
	GoalMuscleGain: {
		{MuscleGroupChest, MuscleGroupArms},
		{MuscleGroupBack, MuscleGroupShoulders},
		{MuscleGroupLegs, MuscleGroupCore},
		{MuscleGroupChest, MuscleGroupShoulders},
		{MuscleGroupBack, MuscleGroupArms},
		{MuscleGroupLegs, MuscleGroupFullBody},
		{MuscleGroupFlexibility},
	},
	GoalMaintenance: {
		{MuscleGroupFullBody},
		{MuscleGroupCardio, MuscleGroupCore},
		{MuscleGroupChest, MuscleGroupBack},
		{MuscleGroupFlexibility},
		{MuscleGroupLegs, MuscleGroupShoulders},
		{MuscleGroupCardio, MuscleGroupArms},
		{MuscleGroupFlexibility, MuscleGroupCore},
	},
}

// FocusAreas returns a copy of the muscle groups trained on the given day index.
func FocusAreas(goal Goal, dayIndex int) []string {
	table, ok := focusAreas[goal]
	if !ok {
		table = focusAreas[GoalMaintenance]
	}
	areas := table[dayIndex%len(table)]
	out := make([]string, len(areas))
	copy(out, areas)
	return out
}

// MuscleGroups returns the names of all catalog focus areas.
func MuscleGroups() []string {
	return []string{
		MuscleGroupCardio, MuscleGroupFullBody, MuscleGroupChest,
		MuscleGroupBack, MuscleGroupLegs, MuscleGroupShoulders,
		MuscleGroupArms, MuscleGroupCore, MuscleGroupFlexibility,
	}
}
