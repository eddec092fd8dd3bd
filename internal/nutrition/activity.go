package nutrition

// Activity is a self-reported physical activity level.
type Activity string

const (
	Sedentary  Activity = "sedentary"
	Light      Activity = "light"
	Moderate   Activity = "moderate"
	Active     Activity = "active"
	VeryActive Activity = "very-active"
)

// activityLevels lists the accepted activity tokens in declaration order.
// This is the single source of truth for valid levels; parseActivity and
// ActivityLevels both read it.
var activityLevels = []Activity{Sedentary, Light, Moderate, Active, VeryActive}

// ActivityLevels returns a copy of the accepted activity levels in
// declaration order.
func ActivityLevels() []Activity {
	out := make([]Activity, len(activityLevels))
	copy(out, activityLevels)
	return out
}

// parseActivity matches s exactly against the accepted tokens. No trimming or
// case folding: "Active" and " active" are rejected.
func parseActivity(s string) (Activity, bool) {
	for _, a := range activityLevels {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}
