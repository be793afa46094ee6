package metrics

import (
    "fmt"
    "math"
    "sort"

    "gonum.org/v1/gonum/integrate"

    "recidiva/internal/data"
)

// Point é um ponto da curva ROC: as taxas de falsos e verdadeiros positivos
// ao classificar como positivo todo score >= Limiar.
type Point struct {
    Limiar float64
    FPR    float64
    TPR    float64
}

// ROC é a curva de um score contra o desfecho, de (0,0) a (1,1), com os
// totais de casos efetivamente usados.
type ROC struct {
    Points []Point
    AUC    float64
    Pos    int
    Neg    int
}

// Curve varre os limiares sobre os scores em ordem decrescente, um ponto por
// score distinto (empates agrupados). Pares com desfecho ou score faltante
// são omitidos da curva.
func Curve(y, scores []float64) (*ROC, error) {
    if len(y) != len(scores) { return nil, fmt.Errorf("comprimentos diferentes: %d e %d", len(y), len(scores)) }

    type pair struct {
        s float64
        y int
    }
    ps := []pair{}
    pos, neg := 0, 0
    for i := range y {
        if math.IsNaN(y[i]) || math.IsNaN(scores[i]) { continue }
        if y[i] != 0 && y[i] != 1 { return nil, fmt.Errorf("valor %g: %w", y[i], data.ErrDesfechoNaoBinario) }
        yi := int(y[i])
        if yi == 1 { pos++ } else { neg++ }
        ps = append(ps, pair{scores[i], yi})
    }
    if pos == 0 || neg == 0 {
        return nil, fmt.Errorf("%d positivos e %d negativos: %w", pos, neg, data.ErrDesfechoDegenerado)
    }

    sort.Slice(ps, func(i, j int) bool { return ps[i].s > ps[j].s })

    points := []Point{{Limiar: math.Inf(1)}}
    tp, fp := 0, 0
    for i := 0; i < len(ps); {
        j := i
        for j < len(ps) && ps[j].s == ps[i].s {
            if ps[j].y == 1 { tp++ } else { fp++ }
            j++
        }
        points = append(points, Point{Limiar: ps[i].s, FPR: float64(fp) / float64(neg), TPR: float64(tp) / float64(pos)})
        i = j
    }

    fpr := make([]float64, len(points))
    tpr := make([]float64, len(points))
    for i, pt := range points {
        fpr[i] = pt.FPR
        tpr[i] = pt.TPR
    }
    return &ROC{Points: points, AUC: integrate.Trapezoidal(fpr, tpr), Pos: pos, Neg: neg}, nil
}

// AUC é o atalho escalar de Curve.
func AUC(y, scores []float64) (float64, error) {
    r, err := Curve(y, scores)
    if err != nil { return math.NaN(), err }
    return r.AUC, nil
}
