package carousel

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("carousel: script has no steps")

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Index  int     `json:"index,omitempty"`
}

// script is the top-level JSON structure of a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// scriptHost is what a Runner drives. Stage implements it.
type scriptHost interface {
	injector() injector
	SelectedIndex() int
	Screenshot(label string)
}

// injector is the non-generic slice of Binding a Runner needs.
type injector interface {
	InjectClick(x, y float64)
	InjectRightClick(x, y float64)
	InjectSwipe(fromX, toX, y float64, frames int)
	Pending() int
}

// Runner sequences injected input, waits, assertions and screenshots across
// frames. Attach it to a Stage with SetRunner; the stage steps it once per
// Update before processing input.
//
// Supported actions: click {x,y}, rightclick {x,y}, swipe {fromX,toX,y,frames},
// wait {frames}, expect {index}, screenshot {label}.
type Runner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadScript parses a JSON script and returns a Runner ready to be attached
// to a Stage.
func LoadScript(jsonData []byte) (*Runner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(sc.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "click", "rightclick", "swipe", "wait", "expect", "screenshot":
		default:
			return nil, errors.Newf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Runner{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Failures returns the expect steps that did not hold, in order.
func (r *Runner) Failures() []error {
	return r.failures
}

// Err combines all failures into one error, or returns nil.
func (r *Runner) Err() error {
	var err error
	for _, f := range r.failures {
		err = errors.CombineErrors(err, f)
	}
	return err
}

// step advances the runner by one frame.
func (r *Runner) step(h scriptHost) {
	if r.done {
		return
	}
	inj := h.injector()
	// Wait for pending injections to drain before advancing.
	if inj.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "click":
		inj.InjectClick(st.X, st.Y)
	case "rightclick":
		inj.InjectRightClick(st.X, st.Y)
	case "swipe":
		inj.InjectSwipe(st.FromX, st.ToX, st.Y, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		if got := h.SelectedIndex(); got != st.Index {
			r.failures = append(r.failures,
				errors.Newf("step %d: expected selected index %d, got %d", r.cursor-1, st.Index, got))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && inj.Pending() == 0 {
		r.done = true
	}
}
