package damage

// ComputeRolls implements the roll-selection API from spec §4.2: the
// engine exposes min/max/average/all-16, letting the pipeline collapse
// to one branch or fan out into sixteen.
func ComputeRolls(ctx DamageContext, mode RollMode) []Result {
	switch mode {
	case RollMin:
		ctx.RollIndex = 0
		return []Result{Compute(ctx)}
	case RollMax:
		ctx.RollIndex = 15
		return []Result{Compute(ctx)}
	case RollAllSixteen:
		out := make([]Result, 16)
		for i := 0; i < 16; i++ {
			ctx.RollIndex = i
			out[i] = Compute(ctx)
		}
		return out
	default: // RollAverage
		ctx.RollIndex = 7 // (85+7)/100 = 92%, the conventional "average roll" approximation
		return []Result{Compute(ctx)}
	}
}
