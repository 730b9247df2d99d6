package instance_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnbtsp/internal/instance"
)

const fourCities = `
name: four-cities
cities: [A, B, C, D]
costs:
  - [0, 10, 15, 20]
  - [10, 0, 35, 25]
  - [15, 35, 0, 30]
  - [20, 25, 30, 0]
`

func TestParse_YAML(t *testing.T) {
	in, err := instance.Parse([]byte(fourCities))
	require.NoError(t, err)
	assert.Equal(t, "four-cities", in.Name)
	assert.Equal(t, 4, in.N())
	assert.Equal(t, "C", in.Label(2))
	assert.Equal(t, "A -> B -> D -> C -> A", in.FormatTour([]int{0, 1, 3, 2, 0}))

	d, err := in.Matrix()
	require.NoError(t, err)
	c, err := d.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 25.0, c)
}

func TestParse_JSONAndInfinity(t *testing.T) {
	in, err := instance.Parse([]byte(`{"costs": [[0, 1, .inf], [1, 0, 2], [3, 2, 0]]}`))
	require.NoError(t, err)
	assert.True(t, math.IsInf(in.Costs[0][2], 1))
	assert.Equal(t, "2", in.Label(2), "index fallback without labels")
	assert.Equal(t, "0 -> 1 -> 0", in.FormatTour([]int{0, 1, 0}))
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"no-costs":      `name: x`,
		"empty-costs":   `costs: []`,
		"empty-row":     "costs:\n  - []\n",
		"ragged":        "costs:\n  - [0, 1]\n  - [1]\n",
		"labels-count":  "cities: [A]\ncosts:\n  - [0, 1]\n  - [1, 0]\n",
		"labels-dup":    "cities: [A, A]\ncosts:\n  - [0, 1]\n  - [1, 0]\n",
		"labels-blank":  "cities: [A, '']\ncosts:\n  - [0, 1]\n  - [1, 0]\n",
		"unknown-field": "cost: [[0]]\n",
		"not-numbers":   "costs:\n  - [a, b]\n  - [c, d]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := instance.Parse([]byte(doc))
			require.ErrorIs(t, err, instance.ErrInvalidInstance)
		})
	}
}

func TestLoadAndEncodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "four.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fourCities), 0o600))

	in, err := instance.Load(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, in.Encode(&buf))
	again, err := instance.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, in, again)
}

func TestLoad_DefaultsNameToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"costs": [[0]]}`), 0o600))

	in, err := instance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, in.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
