package domain

// GoalMode selects the active weight objective.
type GoalMode string

const (
	GoalModeLoss GoalMode = "loss"
	GoalModeGain GoalMode = "gain"
)

// DefaultGoalMode is active until the user switches.
const DefaultGoalMode = GoalModeLoss

func (m GoalMode) String() string {
	return string(m)
}

func (m GoalMode) IsValid() bool {
	switch m {
	case GoalModeLoss, GoalModeGain:
		return true
	default:
		return false
	}
}

// Label is the human readable name of the objective.
func (m GoalMode) Label() string {
	if m == GoalModeGain {
		return "Weight Gain"
	}
	return "Weight Loss"
}

// DietPlan is the suggested daily menu for a goal mode.
type DietPlan struct {
	Breakfast     string `json:"breakfast"`
	Lunch         string `json:"lunch"`
	Dinner        string `json:"dinner"`
	Snacks        string `json:"snacks"`
	TotalCalories int    `json:"totalCalories"` // cal/day
}

// CategoryProgress is one bar of the workout-category progress sample.
type CategoryProgress struct {
	CategoryName    string `json:"categoryName"`
	ProgressPercent int    `json:"progressPercent"`
}

// GoalTarget holds the (hardcoded) body-weight goal shown for a mode.
type GoalTarget struct {
	CurrentWeightKg int `json:"currentWeightKg"`
	TargetWeightKg  int `json:"targetWeightKg"`
	ProgressPercent int `json:"progressPercent"`
}

// --- Reference data ---

var dietPlans = map[GoalMode]DietPlan{
	GoalModeLoss: {
		Breakfast:     "Oatmeal with fruits (300 cal)",
		Lunch:         "Grilled chicken salad (400 cal)",
		Dinner:        "Salmon with vegetables (500 cal)",
		Snacks:        "Nuts and yogurt (200 cal)",
		TotalCalories: 1400,
	},
	GoalModeGain: {
		Breakfast:     "Protein smoothie with oats (500 cal)",
		Lunch:         "Rice with chicken breast and avocado (700 cal)",
		Dinner:        "Steak with sweet potato (800 cal)",
		Snacks:        "Protein bar and banana (400 cal)",
		TotalCalories: 2400,
	},
}

var goalTargets = map[GoalMode]GoalTarget{
	GoalModeLoss: {CurrentWeightKg: 75, TargetWeightKg: 70, ProgressPercent: 60},
	GoalModeGain: {CurrentWeightKg: 65, TargetWeightKg: 75, ProgressPercent: 60},
}

var goalTips = map[GoalMode][]string{
	GoalModeLoss: {
		"Maintain a caloric deficit of 500-750 calories",
		"Drink water before meals to feel fuller",
		"Include protein in every meal",
		"Avoid processed foods and sugary drinks",
	},
	GoalModeGain: {
		"Eat 500-700 calories above maintenance",
		"Consume protein-rich foods every 3-4 hours",
		"Include healthy fats in your diet",
		"Focus on nutrient-dense whole foods",
	},
}

var categoryProgressSample = []CategoryProgress{
	{CategoryName: "Strength Training", ProgressPercent: 65},
	{CategoryName: "Cardio", ProgressPercent: 80},
	{CategoryName: "Flexibility", ProgressPercent: 45},
	{CategoryName: "Endurance", ProgressPercent: 70},
}

// DietPlanFor returns the plan for m. Unknown modes fall back to the default mode.
func DietPlanFor(m GoalMode) DietPlan {
	if plan, ok := dietPlans[m]; ok {
		return plan
	}
	return dietPlans[DefaultGoalMode]
}

// GoalTargetFor returns the weight goal for m. Unknown modes fall back to the default mode.
func GoalTargetFor(m GoalMode) GoalTarget {
	target, ok := goalTargets[m]
	if !ok {
		target = goalTargets[DefaultGoalMode]
	}
	target.ProgressPercent = ClampPercent(target.ProgressPercent)
	return target
}

// TipsFor returns a copy of the tips for m.
func TipsFor(m GoalMode) []string {
	tips, ok := goalTips[m]
	if !ok {
		tips = goalTips[DefaultGoalMode]
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// CategoryProgressSample returns a copy of the static progress sample.
func CategoryProgressSample() []CategoryProgress {
	out := make([]CategoryProgress, len(categoryProgressSample))
	for i, c := range categoryProgressSample {
		c.ProgressPercent = ClampPercent(c.ProgressPercent)
		out[i] = c
	}
	return out
}

// ClampPercent bounds p to [0,100].
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
