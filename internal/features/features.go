package features

import (
    "errors"
    "fmt"
    "math"
    "sort"
    "strconv"

    "recidiva/internal/data"
)

// Covariate nomeia uma coluna da tabela usada como preditor de um modelo.
// Categorical pede expansão em indicadores por nível.
type Covariate struct {
    Name        string `yaml:"name" validate:"required"`
    Categorical bool   `yaml:"categorical"`
}

// Design é a matriz de preditores de um modelo, uma linha por paciente.
// Complete marca as linhas sem valor faltante.
type Design struct {
    Names    []string
    X        [][]float64
    Complete []bool
}

// BuildDesign monta a matriz de covariáveis na ordem dada. Covariáveis
// categóricas viram indicadores "coluna_nível", com os níveis em ordem
// lexicográfica e o primeiro como referência, absorvido pelo intercepto.
// Valor faltante na coluna de origem vira NaN em todas as colunas derivadas
// daquela linha.
func BuildDesign(t *data.Table, covs []Covariate) (*Design, error) {
    if len(covs) == 0 { return nil, errors.New("modelo sem covariáveis") }

    n := t.NumRows()
    names := []string{}
    cols := [][]float64{}
    for _, cv := range covs {
        col, ok := t.Column(cv.Name)
        if !ok { return nil, fmt.Errorf("covariável %s: %w", cv.Name, data.ErrColunaInexistente) }
        if cv.Categorical {
            labels := toLabels(col)
            levels := distinctLevels(labels)
            if len(levels) < 2 { return nil, fmt.Errorf("covariável %s: menos de dois níveis observados", cv.Name) }
            for _, lv := range levels[1:] {
                ind := make([]float64, n)
                for i, lab := range labels {
                    if lab == "" { ind[i] = math.NaN(); continue }
                    if lab == lv { ind[i] = 1 }
                }
                names = append(names, cv.Name+"_"+lv)
                cols = append(cols, ind)
            }
            continue
        }
        if col.Kind != data.Numeric {
            return nil, fmt.Errorf("covariável %s: coluna categórica usada como numérica", cv.Name)
        }
        names = append(names, cv.Name)
        cols = append(cols, col.Floats)
    }

    X := make([][]float64, n)
    complete := make([]bool, n)
    for i := 0; i < n; i++ {
        row := make([]float64, len(cols))
        ok := true
        for j, c := range cols {
            row[j] = c[i]
            if math.IsNaN(c[i]) { ok = false }
        }
        X[i] = row
        complete[i] = ok
    }
    return &Design{Names: names, X: X, Complete: complete}, nil
}

// BinaryOutcome extrai a coluna de desfecho como 0/1, preservando NaN.
// Colunas categóricas são aceitas quando os rótulos observados são apenas
// "0" e "1".
func BinaryOutcome(t *data.Table, name string) ([]float64, error) {
    col, ok := t.Column(name)
    if !ok { return nil, fmt.Errorf("desfecho %s: %w", name, data.ErrColunaInexistente) }

    out := make([]float64, t.NumRows())
    if col.Kind == data.Categorical {
        for i, lab := range col.Labels {
            switch lab {
            case "":
                out[i] = math.NaN()
            case "0":
                out[i] = 0
            case "1":
                out[i] = 1
            default:
                return nil, fmt.Errorf("desfecho %s: rótulo %q: %w", name, lab, data.ErrDesfechoNaoBinario)
            }
        }
        return out, nil
    }
    for i, v := range col.Floats {
        if math.IsNaN(v) {
            out[i] = math.NaN()
            continue
        }
        if v != 0 && v != 1 {
            return nil, fmt.Errorf("desfecho %s: valor %g: %w", name, v, data.ErrDesfechoNaoBinario)
        }
        out[i] = v
    }
    return out, nil
}

func toLabels(col data.Column) []string {
    if col.Kind == data.Categorical { return col.Labels }
    out := make([]string, len(col.Floats))
    for i, v := range col.Floats {
        if math.IsNaN(v) { continue }
        out[i] = strconv.FormatFloat(v, 'f', -1, 64)
    }
    return out
}

func distinctLevels(labels []string) []string {
    seen := map[string]bool{}
    levels := []string{}
    for _, l := range labels {
        if l == "" || seen[l] { continue }
        seen[l] = true
        levels = append(levels, l)
    }
    sort.Strings(levels)
    return levels
}
