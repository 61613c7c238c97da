package gutmann

import "fmt"

const (
	// Passes is the number of logical passes in a Gutmann run.
	Passes = 35
	// SubPasses is the number of full-file rewrites per pass.
	SubPasses = 3

	firstPatternPass = 5
	lastPatternPass  = firstPatternPass + PatternCount - 1
)

// PassKind tells whether a pass writes a pattern byte or random data.
type PassKind int

const (
	Random PassKind = iota
	Fixed
)

func (k PassKind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("PassKind(%d)", int(k))
	}
}

// Step describes one logical pass. Row indexes the shuffled pattern table
// and is only meaningful for Fixed steps.
type Step struct {
	Pass int
	Kind PassKind
	Row  int
}

// Schedule is the ordered list of passes, indexed by pass-1.
type Schedule [Passes]Step

// DefaultSchedule returns the Gutmann plan: random fill for passes 1-4 and
// 32-35, pattern rows 0-26 for passes 5-31.
func DefaultSchedule() Schedule {
	var s Schedule
	for i := range s {
		pass := i + 1
		step := Step{Pass: pass, Kind: Random, Row: -1}
		if pass >= firstPatternPass && pass <= lastPatternPass {
			step.Kind = Fixed
			step.Row = pass - firstPatternPass
		}
		s[i] = step
	}
	return s
}

// Step returns the plan for a 1-based pass number.
func (s *Schedule) Step(pass int) (Step, error) {
	if pass < 1 || pass > Passes {
		return Step{}, fmt.Errorf("pass %d out of range 1..%d", pass, Passes)
	}
	return s[pass-1], nil
}

func (s *Schedule) validate(patterns int) error {
	for i, step := range s {
		if step.Pass != i+1 {
			return fmt.Errorf("schedule entry %d has pass number %d", i, step.Pass)
		}
		if step.Kind == Fixed && (step.Row < 0 || step.Row >= patterns) {
			return fmt.Errorf("pass %d uses pattern row %d of %d", step.Pass, step.Row, patterns)
		}
	}
	return nil
}
