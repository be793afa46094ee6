package data

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coorte.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("columns are typed from their values", func(t *testing.T) {
		path := writeTempCSV(t, "age,tumor_stage,preop_psa,recurrence\n"+
			"61,T2,7.4,0\n"+
			"70,T1,NA,1\n"+
			"55,T3,12.1,0\n")
		tb, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, 3, tb.NumRows())
		assert.Equal(t, []string{"age", "tumor_stage", "preop_psa", "recurrence"}, tb.Names())

		age, ok := tb.Column("age")
		require.True(t, ok)
		assert.Equal(t, Numeric, age.Kind)
		assert.Equal(t, []float64{61, 70, 55}, age.Floats)

		stage, ok := tb.Column("tumor_stage")
		require.True(t, ok)
		assert.Equal(t, Categorical, stage.Kind)
		assert.Equal(t, []string{"T2", "T1", "T3"}, stage.Labels)

		psa, ok := tb.Column("preop_psa")
		require.True(t, ok)
		assert.Equal(t, Numeric, psa.Kind)
		assert.True(t, math.IsNaN(psa.Floats[1]))
		assert.False(t, psa.Missing(0))
		assert.True(t, psa.Missing(1))
	})

	t.Run("every missing marker becomes NaN", func(t *testing.T) {
		path := writeTempCSV(t, "v,id\nNA,1\nNaN,2\n,3\n1.5,4\n")
		tb, err := LoadCSV(path)
		require.NoError(t, err)
		v, ok := tb.Column("v")
		require.True(t, ok)
		require.Equal(t, Numeric, v.Kind)
		assert.True(t, math.IsNaN(v.Floats[0]))
		assert.True(t, math.IsNaN(v.Floats[1]))
		assert.True(t, math.IsNaN(v.Floats[2]))
		assert.Equal(t, 1.5, v.Floats[3])
	})

	t.Run("a single non numeric cell makes the column categorical", func(t *testing.T) {
		path := writeTempCSV(t, "g\n7\n8-10\n7\n")
		tb, err := LoadCSV(path)
		require.NoError(t, err)
		g, ok := tb.Column("g")
		require.True(t, ok)
		assert.Equal(t, Categorical, g.Kind)
		assert.Equal(t, []string{"7", "8-10", "7"}, g.Labels)
	})

	t.Run("header only file is an error", func(t *testing.T) {
		path := writeTempCSV(t, "age,recurrence\n")
		_, err := LoadCSV(path)
		require.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nao_existe.csv"))
		require.Error(t, err)
	})

	t.Run("ragged rows are an error", func(t *testing.T) {
		path := writeTempCSV(t, "a,b\n1,2\n3\n")
		_, err := LoadCSV(path)
		require.Error(t, err)
	})
}

func TestTable(t *testing.T) {
	t.Run("appended columns must match the row count", func(t *testing.T) {
		tb := NewTable(3)
		require.NoError(t, tb.AddNumeric("risk_demografia", []float64{0.1, 0.2, 0.3}))
		require.Error(t, tb.AddNumeric("risk_volume", []float64{0.1}))
		require.Error(t, tb.AddCategorical("curta", []string{"x"}))
	})

	t.Run("duplicate column names are rejected", func(t *testing.T) {
		tb := NewTable(1)
		require.NoError(t, tb.AddNumeric("age", []float64{60}))
		require.Error(t, tb.AddNumeric("age", []float64{61}))
		require.Error(t, tb.AddCategorical("age", []string{"61"}))
	})

	t.Run("lookup reports absence", func(t *testing.T) {
		tb := NewTable(1)
		require.NoError(t, tb.AddNumeric("age", []float64{60}))
		_, ok := tb.Column("age")
		assert.True(t, ok)
		_, ok = tb.Column("psa")
		assert.False(t, ok)
		assert.Equal(t, 1, tb.NumCols())
	})
}
