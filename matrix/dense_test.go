package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnbtsp/matrix"
)

func TestNewDenseFromRows(t *testing.T) {
	rows := [][]float64{{0, 1}, {2, 0}}
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 2, d.Cols())

	v, err := d.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	// The Dense owns a private copy.
	rows[1][0] = 99
	v, err = d.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewDenseFromRows([][]float64{{0, 1, 2}, {1, 0, 2}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDense_AtOutOfBounds(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{5}})
	require.NoError(t, err)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		_, err = d.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "At(%d,%d)", ij[0], ij[1])
	}
}

func TestDense_NilReceiver(t *testing.T) {
	var d *matrix.Dense
	require.Zero(t, d.Rows())
	require.Zero(t, d.Cols())
	_, err := d.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Nil(t, d.RowsCopy())
	require.Equal(t, "<nil>", d.String())
}

func TestDense_RowsCopyAndString(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{0, 1.5}, {2, 0}})
	require.NoError(t, err)

	cp := d.RowsCopy()
	require.Equal(t, [][]float64{{0, 1.5}, {2, 0}}, cp)
	cp[0][1] = 7
	v, _ := d.At(0, 1)
	require.Equal(t, 1.5, v)

	require.Equal(t, "[0, 1.5]\n[2, 0]\n", d.String())
}
