// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTrace reads and validates a YAML trace file.
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sweep: failed to read trace file: %w", err)
	}

	return ParseTrace(data)
}

// ParseTrace decodes and validates a YAML trace.
func ParseTrace(data []byte) (*Trace, error) {
	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("sweep: failed to parse trace file: %w", err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	return &tr, nil
}

// Validate checks step ordering and ranges. Bond ranges and weights are
// left to svd.Worker, which reports them during Replay.
func (tr *Trace) Validate() error {
	if tr == nil {
		return ErrNilTrace
	}
	if len(tr.Steps) == 0 {
		return ErrNoSteps
	}
	prev := 0
	for i, st := range tr.Steps {
		if st.Sweep < 1 {
			return fmt.Errorf("step %d: sweep=%d: %w", i, st.Sweep, ErrBadSweep)
		}
		if st.Half != 1 && st.Half != 2 {
			return fmt.Errorf("step %d: half=%d: %w", i, st.Half, ErrBadHalf)
		}
		if st.Sweep < prev {
			return fmt.Errorf("step %d: sweep %d after %d: %w", i, st.Sweep, prev, ErrSweepOrder)
		}
		prev = st.Sweep
	}

	return nil
}
