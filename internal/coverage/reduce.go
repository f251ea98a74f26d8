package coverage

import (
	"fmt"

	"github.com/gnolang/excheck/internal/pattern"
	"github.com/gnolang/excheck/internal/space"
)

// Verdict is the engine's result for one match expression.
type Verdict struct {
	// Exhaustive is true when every value of the scrutinee's static
	// space is covered by some arm.
	Exhaustive bool
	// Counterexample is one concrete uncovered value when the match is
	// not exhaustive, nil otherwise.
	Counterexample *space.Value
	// Redundant lists indices of arms that removed nothing from the
	// uncovered space. Advisory, never fatal.
	Redundant []int
}

// Check folds the arms over the scrutinee shape in source order,
// subtracting each arm's covered subspace from the remaining one, and
// reports whether every value is covered. On failure the verdict
// carries a minimal counterexample.
//
// The only error condition is a malformed pattern, a host contract
// violation; it aborts this match expression and nothing else.
func Check(sh *space.Shape, arms []pattern.Arm) (Verdict, error) {
	remaining := newResidual(sh)

	var verdict Verdict
	for i, arm := range arms {
		sp, err := pattern.Project(arm, sh)
		if err != nil {
			return Verdict{}, fmt.Errorf("arm %d: %w", i, err)
		}
		shrank := remaining.subtract(sp)
		if !shrank && !sp.IsEmpty() {
			verdict.Redundant = append(verdict.Redundant, i)
		}
	}

	if remaining.empty() {
		verdict.Exhaustive = true
		return verdict, nil
	}
	witness := remaining.witness()
	verdict.Counterexample = &witness
	return verdict, nil
}
