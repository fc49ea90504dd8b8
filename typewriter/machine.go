// Package typewriter cycles through a list of lines, typing each one out and
// erasing it again.
package typewriter

import "time"

type State int

const (
	TypingForward State = iota
	PausedAtEnd
	TypingBackward
	PausedAtStart
)

func (s State) String() string {
	switch s {
	case TypingForward:
		return "typing"
	case PausedAtEnd:
		return "holding"
	case TypingBackward:
		return "erasing"
	case PausedAtStart:
		return "waiting"
	}
	return "unknown"
}

// Delays is how long to wait after each kind of step.
type Delays struct {
	Type        time.Duration
	HoldAtEnd   time.Duration
	ResumeErase time.Duration
	Erase       time.Duration
	HoldAtStart time.Duration
}

// DefaultDelays is 40ms per typed character, a 900ms hold, 60ms before the
// first erase, 20ms per erased character and 200ms before the next line.
var DefaultDelays = Delays{
	Type:        40 * time.Millisecond,
	HoldAtEnd:   900 * time.Millisecond,
	ResumeErase: 60 * time.Millisecond,
	Erase:       20 * time.Millisecond,
	HoldAtStart: 200 * time.Millisecond,
}

// Machine is the type/erase state machine. Each Step performs one
// transition and returns the delay before the next one.
type Machine struct {
	lines  [][]rune
	delays Delays
	line   int
	chars  int
	state  State
}

func NewMachine(lines []string, delays Delays) *Machine {
	m := &Machine{delays: delays}
	for _, l := range lines {
		m.lines = append(m.lines, []rune(l))
	}
	return m
}

// Step advances the machine by one transition.
func (m *Machine) Step() time.Duration {
	if len(m.lines) == 0 {
		return m.delays.HoldAtStart
	}
	switch m.state {
	case TypingForward:
		if m.chars < len(m.lines[m.line]) {
			m.chars++
			return m.delays.Type
		}
		m.state = PausedAtEnd
		return m.delays.HoldAtEnd
	case PausedAtEnd:
		m.state = TypingBackward
		return m.delays.ResumeErase
	case TypingBackward:
		if m.chars > 0 {
			m.chars--
			return m.delays.Erase
		}
		m.line = (m.line + 1) % len(m.lines)
		m.state = PausedAtStart
		return m.delays.HoldAtStart
	case PausedAtStart:
		m.state = TypingForward
		return m.Step()
	}
	return m.delays.Type
}

// Text is the visible prefix of the current line.
func (m *Machine) Text() string {
	if len(m.lines) == 0 {
		return ""
	}
	return string(m.lines[m.line][:m.chars])
}

func (m *Machine) State() State { return m.state }

// Line is the index of the line being typed or erased.
func (m *Machine) Line() int { return m.line }
