package dilemma

// Strategy enumerates the two moves an agent can play. The tag is closed:
// widening it to a third strategy means touching the payoff matrix and the
// display encoding, not inventing a new label.
type Strategy uint8

const (
	Cooperate Strategy = iota
	Defect
)

// Opposite returns the flipped strategy, used by mutation.
func (s Strategy) Opposite() Strategy {
	if s == Cooperate {
		return Defect
	}
	return Cooperate
}

// String returns the lowercase tag name.
func (s Strategy) String() string {
	if s == Cooperate {
		return "cooperate"
	}
	return "defect"
}
