package dilemma

// PayoffMatrix holds the four rewards for one pairwise encounter, keyed by
// the ordered strategy pair (row = focal agent, column = opponent).
//
// The classic dilemma ordering is DC > CC > DD > CD, but any four reals are
// accepted so that Stag Hunt and Hawk-Dove style games fit the same engine.
type PayoffMatrix struct {
	CC float64
	CD float64
	DC float64
	DD float64
}

// For returns the focal agent's payoff when it plays a against b.
func (m PayoffMatrix) For(a, b Strategy) float64 {
	if a == Cooperate {
		if b == Cooperate {
			return m.CC
		}
		return m.CD
	}
	if b == Cooperate {
		return m.DC
	}
	return m.DD
}

// Play resolves one encounter and returns both agents' payoffs.
func (m PayoffMatrix) Play(a, b Strategy) (float64, float64) {
	return m.For(a, b), m.For(b, a)
}

// Bounds returns the smallest and largest entry of the matrix.
func (m PayoffMatrix) Bounds() (min, max float64) {
	min, max = m.CC, m.CC
	for _, v := range []float64{m.CD, m.DC, m.DD} {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
