package numerics

import (
	"iter"
)

// rangeSequence returns a lazy sequence from start towards stop advancing by
// step. The sequence is finite and restartable: ranging over it again replays
// it from start. A zero step yields an empty sequence. The sequence also ends
// when adding step no longer changes the value, as happens with
// floating-point steps too small for the magnitude reached.
func rangeSequence[N INumber](start, stop, step N, inclusive bool) iter.Seq[N] {
	return func(yield func(N) bool) {
		if step == 0 {
			return
		}
		for v := start; inBounds(v, stop, step, inclusive); {
			if !yield(v) {
				return
			}
			next := v + step
			if next == v {
				return
			}
			v = next
		}
	}
}

func inBounds[N INumber](v, stop, step N, inclusive bool) bool {
	if step > 0 {
		if inclusive {
			return v <= stop
		}
		return v < stop
	}
	if inclusive {
		return v >= stop
	}
	return v > stop
}
