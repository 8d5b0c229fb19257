package matrix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetrei/relationutils/matrix"
)

// TestExportCSV writes one 0/1 record per row.
func TestExportCSV(t *testing.T) {
	m := sample(t)
	var sb strings.Builder
	require.NoError(t, m.ExportCSV(&sb))
	assert.Equal(t, "1,0,1\n0,0,1\n0,1,0\n", sb.String())
}

// TestImportCSV round-trips through ExportCSV.
func TestImportCSV(t *testing.T) {
	m := sample(t)
	var sb strings.Builder
	require.NoError(t, m.ExportCSV(&sb))

	back, err := matrix.ImportCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.True(t, m.Equal(back))
}

// TestImportCSV_Empty yields the order-0 matrix.
func TestImportCSV_Empty(t *testing.T) {
	m, err := matrix.ImportCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, m.N())
}

// TestImportCSV_Malformed rejects ragged, non-square, and non-binary data.
func TestImportCSV_Malformed(t *testing.T) {
	cases := map[string]string{
		"ragged":     "1,0\n1\n",
		"not square": "1,0\n0,1\n1,1\n",
		"non-binary": "1,2\n0,1\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.ImportCSV(strings.NewReader(input))
			assert.ErrorIs(t, err, matrix.ErrBadCSV)
		})
	}
}
