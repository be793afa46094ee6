package study

import (
    "errors"
    "fmt"
    "math"

    "go.uber.org/multierr"
    "go.uber.org/zap"

    "recidiva/internal/data"
    "recidiva/internal/ensemble"
    "recidiva/internal/features"
    "recidiva/internal/metrics"
    "recidiva/internal/models"
)

// ModelResult reúne o que um modelo ajustado produziu: os nomes das colunas
// expandidas da matriz, o modelo em si, a coluna de risco e a curva ROC.
// ROC fica nil quando o desfecho ficou degenerado para aquele score.
type ModelResult struct {
    Name  string
    Names []string
    Model *models.LogisticRegression
    Risk  []float64
    ROC   *metrics.ROC
}

// Results é a saída de uma execução do estudo.
type Results struct {
    Outcome      string
    Models       []ModelResult
    EnsembleRisk []float64
    EnsembleROC  *metrics.ROC
}

// Run executa o estudo: ajusta cada modelo no seu subconjunto de covariáveis,
// acrescenta as colunas risk_<modelo> à tabela, agrega a média parcial como
// risk_ensemble e avalia tudo por ROC/AUC. A falha de um modelo não derruba
// os demais; as falhas voltam agregadas no segundo retorno, que pode ser
// não nulo mesmo com Results aproveitáveis. Run só falha de vez quando o
// desfecho é inválido ou nenhum modelo pôde ser ajustado.
func Run(t *data.Table, cfg Config, logger *zap.Logger) (*Results, error) {
    y, err := features.BinaryOutcome(t, cfg.Outcome)
    if err != nil { return nil, err }

    res := &Results{Outcome: cfg.Outcome}
    riskCols := [][]float64{}
    var errs error
    for _, spec := range cfg.Models {
        design, err := features.BuildDesign(t, spec.Covariates)
        if err != nil {
            errs = multierr.Append(errs, fmt.Errorf("modelo %s: %w", spec.Name, err))
            logger.Warn("Modelo descartado", zap.String("modelo", spec.Name), zap.Error(err))
            continue
        }
        lr := models.NewLogisticRegression(spec.Name)
        if err := fitOnObserved(lr, design.X, y); err != nil {
            errs = multierr.Append(errs, fmt.Errorf("modelo %s: %w", spec.Name, err))
            logger.Warn("Modelo descartado", zap.String("modelo", spec.Name), zap.Error(err))
            continue
        }
        risk := lr.PredictProba(design.X)
        if err := t.AddNumeric("risk_"+spec.Name, risk); err != nil {
            errs = multierr.Append(errs, fmt.Errorf("modelo %s: %w", spec.Name, err))
            continue
        }

        mr := ModelResult{Name: spec.Name, Names: design.Names, Model: lr, Risk: risk}
        roc, err := metrics.Curve(y, risk)
        if err != nil {
            errs = multierr.Append(errs, fmt.Errorf("modelo %s: %w", spec.Name, err))
            logger.Warn("AUC indisponível", zap.String("modelo", spec.Name), zap.Error(err))
        } else {
            mr.ROC = roc
            logger.Info("Modelo avaliado",
                zap.String("modelo", spec.Name),
                zap.Float64("auc", roc.AUC),
                zap.Int("n_ajuste", lr.NUsed),
                zap.Int("iteracoes", lr.Iters),
            )
        }
        res.Models = append(res.Models, mr)
        riskCols = append(riskCols, risk)
    }
    if len(res.Models) == 0 {
        return nil, multierr.Append(errors.New("nenhum modelo pôde ser ajustado"), errs)
    }

    avg, err := ensemble.Average(riskCols)
    if err != nil {
        return res, multierr.Append(errs, fmt.Errorf("ensemble: %w", err))
    }
    res.EnsembleRisk = avg
    if err := t.AddNumeric("risk_ensemble", avg); err != nil {
        errs = multierr.Append(errs, fmt.Errorf("ensemble: %w", err))
    }
    roc, err := metrics.Curve(y, avg)
    if err != nil {
        errs = multierr.Append(errs, fmt.Errorf("ensemble: %w", err))
        logger.Warn("AUC do ensemble indisponível", zap.Error(err))
    } else {
        res.EnsembleROC = roc
        logger.Info("Ensemble avaliado",
            zap.Float64("auc", roc.AUC),
            zap.Int("modelos", len(res.Models)),
        )
    }
    return res, errs
}

// fitOnObserved ajusta sobre as linhas com desfecho presente; linhas com
// covariável faltante o próprio Fit descarta.
func fitOnObserved(lr *models.LogisticRegression, X [][]float64, y []float64) error {
    Xf := make([][]float64, 0, len(y))
    yf := make([]int, 0, len(y))
    for i, v := range y {
        if math.IsNaN(v) { continue }
        Xf = append(Xf, X[i])
        yf = append(yf, int(v))
    }
    return lr.Fit(Xf, yf)
}
