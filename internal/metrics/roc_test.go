package metrics

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recidiva/internal/data"
)

func TestCurve(t *testing.T) {
	t.Run("perfect separation scores AUC 1", func(t *testing.T) {
		roc, err := Curve([]float64{1, 0, 1, 0}, []float64{0.9, 0.1, 0.8, 0.2})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, roc.AUC, 1e-12)
		assert.Equal(t, 2, roc.Pos)
		assert.Equal(t, 2, roc.Neg)
	})

	t.Run("constant score gives half credit", func(t *testing.T) {
		roc, err := Curve([]float64{1, 0}, []float64{0.5, 0.5})
		require.NoError(t, err)
		assert.InDelta(t, 0.5, roc.AUC, 1e-12)
		require.Len(t, roc.Points, 2)
	})

	t.Run("curve runs from origin to (1,1)", func(t *testing.T) {
		roc, err := Curve([]float64{1, 0, 1, 0, 1}, []float64{0.9, 0.4, 0.6, 0.6, 0.2})
		require.NoError(t, err)
		first := roc.Points[0]
		last := roc.Points[len(roc.Points)-1]
		assert.Equal(t, 0.0, first.FPR)
		assert.Equal(t, 0.0, first.TPR)
		assert.True(t, math.IsInf(first.Limiar, 1))
		assert.Equal(t, 1.0, last.FPR)
		assert.Equal(t, 1.0, last.TPR)
		// quatro scores distintos, mais o ponto inicial
		assert.Len(t, roc.Points, 5)
	})

	t.Run("pairs with missing values are omitted", func(t *testing.T) {
		nan := math.NaN()
		roc, err := Curve([]float64{1, 0, nan, 1}, []float64{0.8, 0.2, 0.9, nan})
		require.NoError(t, err)
		assert.Equal(t, 1, roc.Pos)
		assert.Equal(t, 1, roc.Neg)
		assert.InDelta(t, 1.0, roc.AUC, 1e-12)
	})

	t.Run("AUC is invariant under monotone transforms", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		n := 400
		y := make([]float64, n)
		s := make([]float64, n)
		s2 := make([]float64, n)
		for i := 0; i < n; i++ {
			if rng.Float64() < 0.3 {
				y[i] = 1
			}
			s[i] = rng.Float64()
			s2[i] = s[i]/2 + 0.25
		}
		a1, err := AUC(y, s)
		require.NoError(t, err)
		a2, err := AUC(y, s2)
		require.NoError(t, err)
		assert.Equal(t, a1, a2)
	})

	t.Run("random scores sit near half", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		n := 2000
		y := make([]float64, n)
		s := make([]float64, n)
		for i := 0; i < n; i++ {
			if rng.Float64() < 0.5 {
				y[i] = 1
			}
			s[i] = rng.Float64()
		}
		a, err := AUC(y, s)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, a, 0.05)
		assert.GreaterOrEqual(t, a, 0.0)
		assert.LessOrEqual(t, a, 1.0)
	})

	t.Run("all negative outcome is degenerate", func(t *testing.T) {
		_, err := Curve([]float64{0, 0, 0}, []float64{0.1, 0.2, 0.3})
		require.Error(t, err)
		assert.True(t, errors.Is(err, data.ErrDesfechoDegenerado))
	})

	t.Run("all positive outcome is degenerate", func(t *testing.T) {
		_, err := Curve([]float64{1, 1}, []float64{0.1, 0.2})
		require.Error(t, err)
		assert.True(t, errors.Is(err, data.ErrDesfechoDegenerado))
	})

	t.Run("non binary outcome is rejected", func(t *testing.T) {
		_, err := Curve([]float64{0, 1, 2}, []float64{0.1, 0.2, 0.3})
		require.Error(t, err)
		assert.True(t, errors.Is(err, data.ErrDesfechoNaoBinario))
	})

	t.Run("length mismatch is an error", func(t *testing.T) {
		_, err := Curve([]float64{0, 1}, []float64{0.1})
		require.Error(t, err)
	})

	t.Run("AUC of the shortcut matches the curve", func(t *testing.T) {
		y := []float64{1, 0, 1, 0, 0, 1}
		s := []float64{0.7, 0.3, 0.6, 0.5, 0.2, 0.9}
		roc, err := Curve(y, s)
		require.NoError(t, err)
		a, err := AUC(y, s)
		require.NoError(t, err)
		assert.Equal(t, roc.AUC, a)
	})
}
