package report

import (
    "fmt"
    "math"
    "sort"
    "strconv"

    "gonum.org/v1/gonum/stat"

    "recidiva/internal/data"
)

// NumericSummary resume uma coluna numérica sobre os valores presentes.
type NumericSummary struct {
    Name    string
    N       int
    Missing int
    Mean    float64
    SD      float64
    Min     float64
    Q1      float64
    Median  float64
    Q3      float64
    Max     float64
}

// Level é uma linha de tabela de frequência.
type Level struct {
    Label   string
    Count   int
    Percent float64
}

// FrequencyTable conta os níveis observados de uma coluna, com percentual
// sobre os valores presentes.
type FrequencyTable struct {
    Name    string
    Levels  []Level
    Missing int
}

// Describe resume uma coluna numérica ignorando os faltantes. Os quartis
// são empíricos sobre a amostra ordenada.
func Describe(t *data.Table, name string) (NumericSummary, error) {
    col, ok := t.Column(name)
    if !ok { return NumericSummary{}, fmt.Errorf("coluna %s: %w", name, data.ErrColunaInexistente) }
    if col.Kind != data.Numeric { return NumericSummary{}, fmt.Errorf("coluna %s não é numérica", name) }

    vals := []float64{}
    missing := 0
    for _, v := range col.Floats {
        if math.IsNaN(v) { missing++; continue }
        vals = append(vals, v)
    }
    s := NumericSummary{Name: name, N: len(vals), Missing: missing}
    if len(vals) == 0 {
        nan := math.NaN()
        s.Mean, s.SD, s.Min, s.Q1, s.Median, s.Q3, s.Max = nan, nan, nan, nan, nan, nan, nan
        return s, nil
    }
    sort.Float64s(vals)
    s.Mean = stat.Mean(vals, nil)
    s.SD = stat.StdDev(vals, nil)
    s.Min = vals[0]
    s.Max = vals[len(vals)-1]
    s.Q1 = stat.Quantile(0.25, stat.Empirical, vals, nil)
    s.Median = stat.Quantile(0.5, stat.Empirical, vals, nil)
    s.Q3 = stat.Quantile(0.75, stat.Empirical, vals, nil)
    return s, nil
}

// Frequencies conta os níveis de uma coluna. Colunas numéricas são aceitas
// com os valores formatados como rótulos, o que cobre as binárias 0/1.
func Frequencies(t *data.Table, name string) (FrequencyTable, error) {
    col, ok := t.Column(name)
    if !ok { return FrequencyTable{}, fmt.Errorf("coluna %s: %w", name, data.ErrColunaInexistente) }

    counts := map[string]int{}
    missing, n := 0, 0
    for i := 0; i < t.NumRows(); i++ {
        if col.Missing(i) { missing++; continue }
        lab := ""
        if col.Kind == data.Numeric { lab = strconv.FormatFloat(col.Floats[i], 'f', -1, 64) } else { lab = col.Labels[i] }
        counts[lab]++
        n++
    }

    ft := FrequencyTable{Name: name, Missing: missing}
    labels := make([]string, 0, len(counts))
    for lab := range counts { labels = append(labels, lab) }
    sort.Strings(labels)
    for _, lab := range labels {
        ft.Levels = append(ft.Levels, Level{Label: lab, Count: counts[lab], Percent: 100 * float64(counts[lab]) / float64(n)})
    }
    return ft, nil
}
