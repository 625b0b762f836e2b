package input

import (
	"errors"
	"fmt"
	"os"

	"github.com/BvdVoort/PWS/character"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScript = errors.New("invalid input script")

// Script replays a fixed sequence of inputs, one per tick. Once exhausted it
// reports no input.
type Script struct {
	frames []character.Input
	next   int
}

func NewScript(frames ...character.Input) *Script {
	return &Script{frames: frames}
}

func (s *Script) Poll() character.Input {
	if s.next >= len(s.frames) {
		return character.Input{}
	}
	in := s.frames[s.next]
	s.next++
	return in
}

// Len is the number of scripted ticks.
func (s *Script) Len() int { return len(s.frames) }

func (s *Script) Done() bool { return s.next >= len(s.frames) }

// Hold repeats in for n ticks.
func Hold(in character.Input, n int) []character.Input {
	out := make([]character.Input, n)
	for i := range out {
		out[i] = in
	}
	return out
}

// Segment is one step of a script file: the same input held for Ticks ticks.
// With Jump set the button is pressed on the first tick and held after.
type Segment struct {
	Ticks      int     `yaml:"ticks"`
	Horizontal float64 `yaml:"horizontal"`
	Jump       bool    `yaml:"jump"`
}

// ParseScript decodes a YAML list of segments.
func ParseScript(data []byte) (*Script, error) {
	var segments []Segment
	if err := yaml.Unmarshal(data, &segments); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	var frames []character.Input
	for i, seg := range segments {
		if seg.Ticks <= 0 {
			return nil, fmt.Errorf("%w: segment %d has %d ticks", ErrInvalidScript, i, seg.Ticks)
		}
		if seg.Horizontal < -1 || seg.Horizontal > 1 {
			return nil, fmt.Errorf("%w: segment %d horizontal %v outside [-1, 1]", ErrInvalidScript, i, seg.Horizontal)
		}
		for tick := range seg.Ticks {
			frames = append(frames, character.Input{
				Horizontal:  seg.Horizontal,
				JumpHeld:    seg.Jump,
				JumpPressed: seg.Jump && tick == 0,
			})
		}
	}
	return NewScript(frames...), nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input script %s: %w", path, err)
	}
	return ParseScript(data)
}
