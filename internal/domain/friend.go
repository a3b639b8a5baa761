package domain

// Friend is a tracked peer. WorkoutsThisWeek and ProgressPercent are set to
// zero on creation and no operation changes them afterwards.
type Friend struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	WorkoutsThisWeek int    `json:"workoutsThisWeek"`
	ProgressPercent  int    `json:"progressPercent"` // Clamped to [0,100]
}
