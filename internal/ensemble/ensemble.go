package ensemble

import (
    "errors"
    "fmt"
    "math"
)

// Average devolve, por linha, a média aritmética dos valores não faltantes
// entre as colunas dadas. Uma linha só recebe NaN quando todas as colunas
// estão faltantes nela; a média parcial nunca é descartada.
func Average(cols [][]float64) ([]float64, error) {
    if len(cols) == 0 { return nil, errors.New("nenhuma coluna para agregar") }
    n := len(cols[0])
    for j, c := range cols {
        if len(c) != n { return nil, fmt.Errorf("coluna %d com %d valores para %d linhas", j, len(c), n) }
    }

    out := make([]float64, n)
    for i := 0; i < n; i++ {
        sum, count := 0.0, 0
        for _, c := range cols {
            if math.IsNaN(c[i]) { continue }
            sum += c[i]
            count++
        }
        if count == 0 { out[i] = math.NaN() } else { out[i] = sum / float64(count) }
    }
    return out, nil
}
