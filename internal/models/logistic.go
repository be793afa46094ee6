package models

import (
    "errors"
    "fmt"
    "math"

    "gonum.org/v1/gonum/mat"
)

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

// LogisticRegression é regressão logística binária ajustada por mínimos
// quadrados reponderados (passos de Newton). O ajuste usa apenas linhas
// completas; a previsão propaga NaN de qualquer covariável faltante.
type LogisticRegression struct {
    ModelName string
    MaxIter   int
    Tol       float64

    Intercept float64
    Coef      []float64
    StdErr    []float64
    Iters     int
    NUsed     int
}

func NewLogisticRegression(name string) *LogisticRegression {
    return &LogisticRegression{ModelName: name, MaxIter: 25, Tol: 1e-8}
}

func (lr *LogisticRegression) Name() string { return lr.ModelName }

func (lr *LogisticRegression) Fit(X [][]float64, y []int) error {
    if len(y) != len(X) { return errors.New("comprimentos de X e y diferentes") }
    rows := completeRows(X)
    n := len(rows)
    if n == 0 { return errors.New("nenhuma linha completa para ajuste") }
    p := len(X[rows[0]])
    np := p + 1
    if n <= np { return fmt.Errorf("linhas completas insuficientes: %d para %d coeficientes", n, np) }

    pos := 0
    for _, i := range rows { if y[i] == 1 { pos++ } }
    if pos == 0 || pos == n { return errors.New("desfecho com classe única entre as linhas completas") }

    base := float64(pos) / float64(n)
    if base <= 1e-3 { base = 1e-3 }
    if base >= 1-1e-3 { base = 1 - 1e-3 }
    beta := make([]float64, np)
    beta[0] = math.Log(base / (1.0 - base))

    xi := make([]float64, np)
    var chol mat.Cholesky
    converged := false
    for iter := 0; iter < lr.MaxIter; iter++ {
        xtwx := mat.NewSymDense(np, nil)
        xtwz := mat.NewVecDense(np, nil)
        for _, i := range rows {
            xi[0] = 1
            copy(xi[1:], X[i])
            eta := 0.0
            for j, b := range beta { eta += b * xi[j] }
            mu := sigmoid(eta)
            w := mu * (1 - mu)
            if w < 1e-10 { w = 1e-10 }
            z := eta + (float64(y[i])-mu)/w
            for j := 0; j < np; j++ {
                for k := j; k < np; k++ {
                    xtwx.SetSym(j, k, xtwx.At(j, k)+w*xi[j]*xi[k])
                }
                xtwz.SetVec(j, xtwz.AtVec(j)+w*xi[j]*z)
            }
        }
        if ok := chol.Factorize(xtwx); !ok {
            return errors.New("matriz de informação singular")
        }
        next := mat.NewVecDense(np, nil)
        if err := chol.SolveVecTo(next, xtwz); err != nil {
            return fmt.Errorf("passo de newton: %w", err)
        }
        delta := 0.0
        for j := 0; j < np; j++ {
            d := math.Abs(next.AtVec(j) - beta[j])
            if d > delta { delta = d }
            beta[j] = next.AtVec(j)
        }
        lr.Iters = iter + 1
        if delta < lr.Tol { converged = true; break }
    }
    if !converged { return fmt.Errorf("sem convergência em %d iterações", lr.MaxIter) }

    var cov mat.SymDense
    if err := chol.InverseTo(&cov); err != nil {
        return fmt.Errorf("inversa da informação: %w", err)
    }
    lr.StdErr = make([]float64, np)
    for j := 0; j < np; j++ { lr.StdErr[j] = math.Sqrt(cov.At(j, j)) }

    lr.Intercept = beta[0]
    lr.Coef = append([]float64(nil), beta[1:]...)
    lr.NUsed = n
    return nil
}

// PredictProba devolve sigmoid(β0 + x·β) por linha; qualquer NaN na linha
// produz NaN, nada é imputado.
func (lr *LogisticRegression) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i, row := range X {
        eta := lr.Intercept
        miss := false
        for j, v := range row {
            if math.IsNaN(v) { miss = true; break }
            eta += lr.Coef[j] * v
        }
        if miss { out[i] = math.NaN() } else { out[i] = sigmoid(eta) }
    }
    return out
}

func (lr *LogisticRegression) Predict(X [][]float64) []int {
    out := make([]int, len(X))
    p := lr.PredictProba(X)
    for i := range p {
        if p[i] >= 0.5 { out[i] = 1 } else { out[i] = 0 }
    }
    return out
}

func completeRows(X [][]float64) []int {
    rows := []int{}
    for i, row := range X {
        ok := true
        for _, v := range row {
            if math.IsNaN(v) { ok = false; break }
        }
        if ok { rows = append(rows, i) }
    }
    return rows
}
