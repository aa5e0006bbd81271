// Package lights solves indicator-light machines: each machine has a row of
// lights, all off at power-up, and buttons that toggle fixed subsets of them.
// The fewest presses that reach the wanted pattern is found by a breadth-first
// search over light states encoded as bitmasks.
//
// Machines are written one per line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// The bracket holds the wanted pattern ('#' on, '.' off), each parenthesised
// group lists the lights one button toggles, and the optional braces hold
// joltage requirements.
package lights

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/pathfinder/search"
)

// MaxLights is the widest pattern a machine may have.
const MaxLights = 64

var (
	// ErrBadMachine indicates a line that does not describe a valid machine.
	ErrBadMachine = errors.New("lights: malformed machine")
	// ErrUnsolvable indicates no button sequence produces the pattern.
	ErrUnsolvable = errors.New("lights: pattern cannot be reached")
)

// Machine is one parsed machine. Bit i of Target and of each button mask
// refers to light i.
type Machine struct {
	Lights  int
	Target  uint64
	Buttons []uint64
	Joltage []int
}

// grammar

type machineExpr struct {
	Lights  []string      `"[" @("." | "#")* "]"`
	Buttons []*buttonExpr `@@*`
	Joltage []int         `("{" (@Int ("," @Int)*)? "}")?`
}

type buttonExpr struct {
	Wires []int `"(" (@Int ("," @Int)*)? ")"`
}

var parseMachine = participle.MustBuild[machineExpr]()

// Parse reads one machine line.
func Parse(line string) (Machine, error) {
	expr, err := parseMachine.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return Machine{}, fmt.Errorf("%w: %q: %w", ErrBadMachine, line, err)
	}
	if len(expr.Lights) == 0 || len(expr.Lights) > MaxLights {
		return Machine{}, fmt.Errorf("%w: %q: need 1 to %d lights, got %d",
			ErrBadMachine, line, MaxLights, len(expr.Lights))
	}

	m := Machine{Lights: len(expr.Lights), Joltage: expr.Joltage}
	for i, l := range expr.Lights {
		if l == "#" {
			m.Target |= 1 << i
		}
	}
	for _, b := range expr.Buttons {
		var mask uint64
		for _, w := range b.Wires {
			if w < 0 || w >= m.Lights {
				return Machine{}, fmt.Errorf("%w: %q: button wires light %d of %d",
					ErrBadMachine, line, w, m.Lights)
			}
			mask |= 1 << w
		}
		m.Buttons = append(m.Buttons, mask)
	}
	return m, nil
}

// ParseAll reads one machine per non-blank line.
func ParseAll(text string) ([]Machine, error) {
	var out []Machine
	for n, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// MinPresses returns the fewest button presses that turn the lights from
// all-off into m.Target. Pressing a button twice cancels out, so the
// answer never exceeds len(m.Buttons).
func MinPresses(m Machine, opts ...search.Option) (int, error) {
	next := func(state uint64) []uint64 {
		out := make([]uint64, len(m.Buttons))
		for i, b := range m.Buttons {
			out[i] = state ^ b
		}
		return out
	}
	res, err := search.Find(search.Problem[uint64]{
		Start: 0,
		Next:  search.Unweighted(next),
		End:   search.EndState(m.Target),
	}, slices.Concat([]search.Option{search.WithName("lights")}, opts)...)
	if err != nil {
		return 0, err
	}
	if !res.Found() {
		return 0, ErrUnsolvable
	}
	return res.Cost, nil
}

// Total sums MinPresses over machines.
func Total(machines []Machine, opts ...search.Option) (int, error) {
	sum := 0
	for i, m := range machines {
		n, err := MinPresses(m, opts...)
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i+1, err)
		}
		sum += n
	}
	return sum, nil
}
