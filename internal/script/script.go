package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

// Step is a single scripted action: exactly one of Play or Jump is set.
type Step struct {
	Play *int `yaml:"play,omitempty"`
	Jump *int `yaml:"jump,omitempty"`
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

// session is the part of a game session a script drives.
type session interface {
	Play(cell int) error
	JumpTo(move int) error
}

// Load - reads a script file.
func Load(path string) (*Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open script: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse - decodes and validates a script.
func Parse(r io.Reader) (*Script, error) {
	var script Script

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return &script, nil
		}

		return nil, fmt.Errorf("can't decode script: %w", err)
	}

	for i, step := range script.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return &script, nil
}

// Apply - runs every step in order, stopping at the first error.
func (that *Script) Apply(s session) error {
	for i, step := range that.Steps {
		var err error

		if step.Play != nil {
			err = s.Play(*step.Play)
		} else {
			err = s.JumpTo(*step.Jump)
		}

		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	return nil
}

func (that Step) validate() error {
	switch {
	case that.Play != nil && that.Jump != nil:
		return fmt.Errorf("%w: both play and jump are set", apperror.ErrInvalidStep)
	case that.Play == nil && that.Jump == nil:
		return fmt.Errorf("%w: neither play nor jump is set", apperror.ErrInvalidStep)
	default:
		return nil
	}
}
