// Package instance reads and writes TSP instance files.
//
// An instance file is YAML (JSON is accepted too, being a YAML subset):
//
//	name: four-cities        # optional
//	cities: [A, B, C, D]     # optional labels, one per row, unique
//	costs:                   # required n×n table; 0 or .inf off the diagonal = no edge
//	  - [0, 10, 15, 20]
//	  - [10, 0, 35, 25]
//	  - [15, 35, 0, 30]
//	  - [20, 25, 30, 0]
//
// Only the structure is checked here. Numeric policy (negative or NaN costs)
// belongs to the solver, which reports it with its own sentinels.
package instance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// ErrInvalidInstance wraps every structural defect of an instance file.
var ErrInvalidInstance = errors.New("instance: invalid instance")

var validate = validator.New()

// Instance is one cost matrix plus optional metadata.
type Instance struct {
	Name   string      `yaml:"name,omitempty" json:"name,omitempty"`
	Cities []string    `yaml:"cities,omitempty" json:"cities,omitempty" validate:"omitempty,unique,dive,required"`
	Costs  [][]float64 `yaml:"costs" json:"costs" validate:"required,min=1,dive,min=1"`
}

// Parse decodes and validates an instance from YAML or JSON bytes.
func Parse(data []byte) (*Instance, error) {
	var in Instance
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidInstance)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}

// Load reads the instance file at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	in, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if in.Name == "" {
		in.Name = path
	}

	return in, nil
}

// Validate checks tags, squareness and the label count.
func (in *Instance) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	var n = len(in.Costs)
	for i, row := range in.Costs {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d costs, want %d", ErrInvalidInstance, i, len(row), n)
		}
	}
	if len(in.Cities) > 0 && len(in.Cities) != n {
		return fmt.Errorf("%w: %d city labels for %d rows", ErrInvalidInstance, len(in.Cities), n)
	}

	return nil
}

// N returns the number of cities.
func (in *Instance) N() int { return len(in.Costs) }

// Matrix returns an immutable copy of the cost table.
func (in *Instance) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(in.Costs)
}

// Label returns the name of city i, or its index when no labels were given.
func (in *Instance) Label(i int) string {
	if i >= 0 && i < len(in.Cities) {
		return in.Cities[i]
	}

	return strconv.Itoa(i)
}

// FormatTour renders a tour as "A -> C -> B -> A".
func (in *Instance) FormatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, c := range tour {
		parts[i] = in.Label(c)
	}

	return strings.Join(parts, " -> ")
}

// Encode writes the instance as YAML.
func (in *Instance) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("instance: encode: %w", err)
	}

	return enc.Close()
}
