package data

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSyntheticCohort(t *testing.T) {
	t.Run("generated cohort loads with the expected shape", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "coorte.csv")
		require.NoError(t, GenerateSyntheticCohort(316, 42, path))

		tb, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, 316, tb.NumRows())
		assert.Equal(t, 13, tb.NumCols())

		for _, name := range []string{"age", "family_history", "tumor_volume", "prostate_volume",
			"node_involvement", "organ_confined", "preop_psa", "preop_therapy",
			"adjuvant_therapy", "adjuvant_radiation", "recurrence"} {
			col, ok := tb.Column(name)
			require.True(t, ok, name)
			assert.Equal(t, Numeric, col.Kind, name)
		}
		for _, name := range []string{"tumor_stage", "gleason"} {
			col, ok := tb.Column(name)
			require.True(t, ok, name)
			assert.Equal(t, Categorical, col.Kind, name)
		}

		stage, _ := tb.Column("tumor_stage")
		for _, lab := range stage.Labels {
			assert.Contains(t, []string{"T1", "T2", "T3"}, lab)
		}

		rec, _ := tb.Column("recurrence")
		pos, neg := 0, 0
		for _, v := range rec.Floats {
			require.False(t, math.IsNaN(v))
			if v == 1 {
				pos++
			} else {
				require.Equal(t, 0.0, v)
				neg++
			}
		}
		assert.Greater(t, pos, 0)
		assert.Greater(t, neg, 0)

		age, _ := tb.Column("age")
		for _, v := range age.Floats {
			assert.GreaterOrEqual(t, v, 45.0)
			assert.LessOrEqual(t, v, 79.0)
		}
	})

	t.Run("volume and psa columns carry missing values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "coorte.csv")
		require.NoError(t, GenerateSyntheticCohort(1000, 9, path))
		tb, err := LoadCSV(path)
		require.NoError(t, err)
		for _, name := range []string{"tumor_volume", "prostate_volume", "preop_psa"} {
			col, _ := tb.Column(name)
			missing := 0
			for i := range col.Floats {
				if col.Missing(i) {
					missing++
				}
			}
			assert.Greater(t, missing, 0, name)
			assert.Less(t, missing, 150, name)
		}
	})

	t.Run("same seed reproduces the same file", func(t *testing.T) {
		dir := t.TempDir()
		p1 := filepath.Join(dir, "a.csv")
		p2 := filepath.Join(dir, "b.csv")
		require.NoError(t, GenerateSyntheticCohort(100, 7, p1))
		require.NoError(t, GenerateSyntheticCohort(100, 7, p2))
		b1, err := os.ReadFile(p1)
		require.NoError(t, err)
		b2, err := os.ReadFile(p2)
		require.NoError(t, err)
		assert.Equal(t, b1, b2)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		dir := t.TempDir()
		p1 := filepath.Join(dir, "a.csv")
		p2 := filepath.Join(dir, "b.csv")
		require.NoError(t, GenerateSyntheticCohort(100, 7, p1))
		require.NoError(t, GenerateSyntheticCohort(100, 8, p2))
		b1, err := os.ReadFile(p1)
		require.NoError(t, err)
		b2, err := os.ReadFile(p2)
		require.NoError(t, err)
		assert.NotEqual(t, b1, b2)
	})
}
