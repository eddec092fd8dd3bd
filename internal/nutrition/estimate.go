package nutrition

// Placeholder intake policy. Only Active earns the calorie bonus, VeryActive
// does not; height and age are validated but not used by any formula.
const (
	baseCalories     = 2000
	activeBonus      = 300
	proteinPerWeight = 1.5
	carbsPerWeight   = 3
	fatPerWeight     = 0.5
	waterPerWeight   = 0.03
)

// Estimate is the recommended daily intake. Protein, carbs and fat are in
// grams, water in litres. Values are unrounded.
type Estimate struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Water    float64 `json:"water"`
}

// Estimate derives the daily intake from a validated submission.
func (in Input) Estimate() Estimate {
	calories := float64(baseCalories)
	if in.activity == Active {
		calories += activeBonus
	}
	return Estimate{
		Calories: calories,
		Protein:  in.weight * proteinPerWeight,
		Carbs:    in.weight * carbsPerWeight,
		Fat:      in.weight * fatPerWeight,
		Water:    in.weight * waterPerWeight,
	}
}
