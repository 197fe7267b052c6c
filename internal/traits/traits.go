package traits

// Primary is one of the eight leaf traits quiz options are tagged with.
type Primary string

const (
	Decisive      Primary = "decisive"
	Analytical    Primary = "analytical"
	Creative      Primary = "creative"
	Ideal         Primary = "ideal"
	Control       Primary = "control"
	Affairs       Primary = "affairs"
	Feeling       Primary = "feeling"
	Interpersonal Primary = "interpersonal"
)

// AllPrimary returns the primary traits in display order.
func AllPrimary() []Primary {
	return []Primary{
		Decisive,
		Analytical,
		Creative,
		Ideal,
		Control,
		Affairs,
		Feeling,
		Interpersonal,
	}
}

// Valid reports whether p is one of the eight primary traits.
func (p Primary) Valid() bool {
	_, ok := contributions[p]
	return ok
}

// DisplayName returns a human-readable label for the primary trait.
func (p Primary) DisplayName() string {
	switch p {
	case Decisive:
		return "Decisive"
	case Analytical:
		return "Analytical"
	case Creative:
		return "Creative"
	case Ideal:
		return "Idealist"
	case Control:
		return "Control"
	case Affairs:
		return "Affairs"
	case Feeling:
		return "Feeling"
	case Interpersonal:
		return "Interpersonal"
	default:
		return string(p)
	}
}

// Axis is one of the six final traits, each being one pole of a Pair.
type Axis string

const (
	Extroversion Axis = "extroversion"
	Introversion Axis = "introversion"
	Rational     Axis = "rational"
	Emotional    Axis = "emotional"
	Thinking     Axis = "thinking"
	Action       Axis = "action"
)

// AllAxes returns the axis traits in display order, pairwise.
func AllAxes() []Axis {
	return []Axis{Extroversion, Introversion, Rational, Emotional, Thinking, Action}
}

// DisplayName returns a human-readable label for the axis trait.
func (a Axis) DisplayName() string {
	switch a {
	case Extroversion:
		return "Extroversion"
	case Introversion:
		return "Introversion"
	case Rational:
		return "Rational"
	case Emotional:
		return "Emotional"
	case Thinking:
		return "Thinking"
	case Action:
		return "Action"
	default:
		return string(a)
	}
}

// Pair is a bipolar axis. Left and Right are the two opposing poles.
type Pair struct {
	Left  Axis
	Right Axis
}

// Pairs returns the three bipolar pairs in display order.
func Pairs() []Pair {
	return []Pair{
		{Left: Extroversion, Right: Introversion},
		{Left: Rational, Right: Emotional},
		{Left: Thinking, Right: Action},
	}
}

var contributions = map[Primary][]Axis{
	Decisive:      {Extroversion, Rational, Emotional, Action},
	Analytical:    {Introversion, Rational, Thinking},
	Creative:      {Introversion, Emotional, Action},
	Ideal:         {Extroversion, Emotional, Thinking},
	Control:       {Extroversion, Rational, Emotional, Action},
	Affairs:       {Introversion, Rational},
	Feeling:       {Introversion, Emotional, Thinking},
	Interpersonal: {Extroversion, Emotional},
}

// Contributes returns the axis traits a primary trait feeds, in table order.
// Unknown traits contribute to nothing. The returned slice is a copy.
func Contributes(p Primary) []Axis {
	axes := contributions[p]
	if axes == nil {
		return nil
	}
	out := make([]Axis, len(axes))
	copy(out, axes)
	return out
}
