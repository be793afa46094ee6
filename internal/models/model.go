package models

// Model é o contrato comum dos modelos de risco do estudo. Fit recebe a
// matriz de covariáveis já expandida e o desfecho 0/1; PredictProba devolve
// uma probabilidade por linha, com NaN onde a previsão não é possível.
type Model interface {
    Fit(X [][]float64, y []int) error
    Predict(X [][]float64) []int
    PredictProba(X [][]float64) []float64
    Name() string
}
