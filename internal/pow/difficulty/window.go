package difficulty

import (
	"errors"

	"github.com/holiman/uint256"
)

// maxSolveTimeFactor caps a single solve time at this many target block times.
const maxSolveTimeFactor = 6

// RetargetParams configures the linear weighted moving average for one algorithm.
type RetargetParams struct {
	// TargetTime is the desired seconds between blocks of the algorithm.
	TargetTime uint64
	// WindowSize is the maximum number of samples considered.
	WindowSize int
	InitialDifficulty Difficulty
	MinDifficulty     Difficulty
}

// Validate checks that the parameters describe a usable window.
func (p RetargetParams) Validate() error {
	if p.TargetTime == 0 {
		return errors.New("target time must be positive")
	}
	if p.WindowSize < 2 {
		return errors.New("window size must be at least 2")
	}
	if p.InitialDifficulty.IsZero() {
		return errors.New("initial difficulty must be positive")
	}
	if p.InitialDifficulty.Less(p.MinDifficulty) {
		return errors.New("initial difficulty below minimum")
	}
	return nil
}

// Sample is a single (timestamp, target difficulty) point in a window.
type Sample struct {
	Timestamp        uint64
	TargetDifficulty Difficulty
}

// Window holds the most recent samples for one algorithm, oldest first.
type Window struct {
	params  RetargetParams
	samples []Sample
}

// NewWindow returns an empty window using params.
func NewWindow(params RetargetParams) *Window {
	return &Window{
		params:  params,
		samples: make([]Sample, 0, params.WindowSize),
	}
}

// Add appends a sample, dropping the oldest one once WindowSize is reached.
// Samples must be added in ascending height order.
func (w *Window) Add(timestamp uint64, target Difficulty) {
	if w.params.WindowSize > 0 && len(w.samples) >= w.params.WindowSize {
		copy(w.samples, w.samples[1:])
		w.samples = w.samples[:len(w.samples)-1]
	}
	w.samples = append(w.samples, Sample{Timestamp: timestamp, TargetDifficulty: target})
}

func (w *Window) Len() int {
	return len(w.samples)
}

// Samples returns a copy of the samples, oldest first.
func (w *Window) Samples() []Sample {
	out := make([]Sample, len(w.samples))
	copy(out, w.samples)
	return out
}

// Calculate returns the target difficulty for the next block. It does not modify the window.
func (w *Window) Calculate() Difficulty {
	if len(w.samples) <= 1 {
		return w.params.InitialDifficulty
	}

	n := uint64(len(w.samples) - 1)
	target := w.params.TargetTime

	var sum uint256.Int
	saturated := false
	for _, s := range w.samples[1:] {
		if _, overflow := sum.AddOverflow(&sum, &s.TargetDifficulty.v); overflow {
			saturated = true
			break
		}
	}
	if saturated {
		return Max()
	}
	var avg uint256.Int
	avg.Div(&sum, uint256.NewInt(n))

	var weightedTimes uint64
	prev := w.samples[0].Timestamp
	maxSolve := maxSolveTimeFactor * target
	for i := 1; i < len(w.samples); i++ {
		this := w.samples[i].Timestamp
		if this <= prev {
			this = prev + 1
		}
		solve := this - prev
		if solve > maxSolve {
			solve = maxSolve
		}
		prev = this
		weightedTimes += solve * uint64(i)
	}

	// k = n(n+1)T/2
	var k uint256.Int
	k.SetUint64(n)
	k.Mul(&k, uint256.NewInt(n+1))
	k.Mul(&k, uint256.NewInt(target))
	k.Rsh(&k, 1)

	var next Difficulty
	if _, overflow := next.v.MulOverflow(&avg, &k); overflow {
		return Max()
	}
	next.v.Div(&next.v, uint256.NewInt(weightedTimes))

	if next.Less(w.params.MinDifficulty) {
		return w.params.MinDifficulty
	}
	return next
}
