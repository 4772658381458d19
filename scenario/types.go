package scenario

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for scenario loading and checking.
var (
	// ErrMissingField indicates a required key is absent.
	ErrMissingField = errors.New("scenario: missing required field")

	// ErrBadMapRune indicates a map cell outside "#.SD" or a repeated endpoint marker.
	ErrBadMapRune = errors.New("scenario: invalid map cell")

	// ErrConflictingObstacles indicates a map given together with explicit geometry.
	ErrConflictingObstacles = errors.New("scenario: map conflicts with explicit fields")

	// ErrExpectationMismatch indicates a result that differs from the expect block.
	ErrExpectationMismatch = errors.New("scenario: result does not match expectation")
)

// Scenario is one fully resolved path-finding problem.
type Scenario struct {
	Name        string
	Bounds      grid.Coordinate
	Source      grid.Coordinate
	Destination grid.Coordinate
	Blocked     []grid.Coordinate

	// Expect is nil when the file carries no expect block.
	Expect *Expectation
}

// Expectation is the outcome a scenario asserts. Length is only compared
// when Found is true and Length is set.
type Expectation struct {
	Found  bool
	Length *int
}

// document mirrors the YAML layout.
type document struct {
	Name        string     `yaml:"name"`
	Bounds      *point     `yaml:"bounds"`
	Source      *point     `yaml:"source"`
	Destination *point     `yaml:"destination"`
	Blocked     []point    `yaml:"blocked"`
	Map         string     `yaml:"map"`
	Expect      *expectDoc `yaml:"expect"`
}

type expectDoc struct {
	Found  *bool `yaml:"found"`
	Length *int  `yaml:"length"`
}

// point decodes either [x, y] or {x: .., y: ..}.
type point grid.Coordinate

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *point) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var xy []int
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point needs exactly 2 values, got %d", node.Line, len(xy))
		}
		*p = point{X: xy[0], Y: xy[1]}

		return nil
	}

	var m struct {
		X *int `yaml:"x"`
		Y *int `yaml:"y"`
	}
	if err := node.Decode(&m); err != nil {
		return err
	}
	if m.X == nil || m.Y == nil {
		return fmt.Errorf("%w: line %d: point needs both x and y", ErrMissingField, node.Line)
	}
	*p = point{X: *m.X, Y: *m.Y}

	return nil
}
