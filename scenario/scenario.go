package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Map cell markers.
const (
	cellFree        = '.'
	cellWall        = '#'
	cellSource      = 'S'
	cellDestination = 'D'
)

// Load decodes one scenario from r.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMissingField)
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	return doc.resolve()
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// resolve turns the raw document into a Scenario, expanding the map if present.
func (d *document) resolve() (*Scenario, error) {
	s := &Scenario{Name: d.Name}

	if d.Map != "" {
		if err := d.resolveMap(s); err != nil {
			return nil, err
		}
	} else {
		if d.Bounds == nil {
			return nil, fmt.Errorf("%w: bounds", ErrMissingField)
		}
		s.Bounds = grid.Coordinate(*d.Bounds)
		s.Blocked = make([]grid.Coordinate, 0, len(d.Blocked))
		for _, b := range d.Blocked {
			s.Blocked = append(s.Blocked, grid.Coordinate(b))
		}
	}

	// Endpoints from explicit fields, unless the map already placed them.
	if d.Source != nil {
		s.Source = grid.Coordinate(*d.Source)
	} else if s.Source == (grid.Coordinate{}) {
		return nil, fmt.Errorf("%w: source", ErrMissingField)
	}
	if d.Destination != nil {
		s.Destination = grid.Coordinate(*d.Destination)
	} else if s.Destination == (grid.Coordinate{}) {
		return nil, fmt.Errorf("%w: destination", ErrMissingField)
	}

	if d.Expect != nil {
		if d.Expect.Found == nil {
			return nil, fmt.Errorf("%w: expect.found", ErrMissingField)
		}
		s.Expect = &Expectation{Found: *d.Expect.Found, Length: d.Expect.Length}
	}

	return s, nil
}

// resolveMap fills bounds, walls and any S/D markers from the ASCII map.
func (d *document) resolveMap(s *Scenario) error {
	if d.Bounds != nil {
		return fmt.Errorf("%w: bounds", ErrConflictingObstacles)
	}
	if len(d.Blocked) > 0 {
		return fmt.Errorf("%w: blocked", ErrConflictingObstacles)
	}

	rows := strings.Split(strings.TrimRight(d.Map, "\n"), "\n")
	layer := make([][]int, len(rows))
	var haveS, haveD bool
	for r, row := range rows {
		row = strings.TrimRight(row, " \t\r")
		layer[r] = make([]int, 0, len(row))
		for c, ch := range row {
			at := grid.C(c+1, r+1)
			switch ch {
			case cellFree:
			case cellWall:
				layer[r] = append(layer[r], 1)
				continue
			case cellSource:
				if haveS {
					return fmt.Errorf("%w: second %q at %v", ErrBadMapRune, ch, at)
				}
				haveS, s.Source = true, at
			case cellDestination:
				if haveD {
					return fmt.Errorf("%w: second %q at %v", ErrBadMapRune, ch, at)
				}
				haveD, s.Destination = true, at
			default:
				return fmt.Errorf("%w: %q at %v", ErrBadMapRune, ch, at)
			}
			layer[r] = append(layer[r], 0)
		}
	}

	if haveS && d.Source != nil {
		return fmt.Errorf("%w: source given in map and as a field", ErrConflictingObstacles)
	}
	if haveD && d.Destination != nil {
		return fmt.Errorf("%w: destination given in map and as a field", ErrConflictingObstacles)
	}

	blocked, bounds, err := grid.BlockedFromLayer(layer, 1)
	if err != nil {
		return fmt.Errorf("scenario: map: %w", err)
	}
	s.Blocked, s.Bounds = blocked, bounds

	return nil
}

// Run searches the scenario with astar.FindPath.
func (s *Scenario) Run(opts ...astar.Option) (*astar.Result, error) {
	return astar.FindPath(s.Blocked, s.Source, s.Destination, s.Bounds, opts...)
}

// Check compares res against the expect block. A scenario without one always passes.
func (s *Scenario) Check(res *astar.Result) error {
	if s.Expect == nil {
		return nil
	}
	if res.Found != s.Expect.Found {
		return fmt.Errorf("%w: found=%t, want %t", ErrExpectationMismatch, res.Found, s.Expect.Found)
	}
	if res.Found && s.Expect.Length != nil && res.Cost != *s.Expect.Length {
		return fmt.Errorf("%w: length=%d, want %d", ErrExpectationMismatch, res.Cost, *s.Expect.Length)
	}

	return nil
}
