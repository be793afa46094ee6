package report

import (
    "encoding/csv"
    "fmt"
    "io"
    "math"
    "os"
    "path/filepath"
    "strconv"
    "strings"

    "recidiva/internal/data"
    "recidiva/internal/metrics"
    "recidiva/internal/study"
)

// WriteText escreve o relatório do estudo em texto de largura fixa: seção
// descritiva da coorte, uma seção por modelo com AUC e coeficientes, e a
// seção do ensemble.
func WriteText(w io.Writer, t *data.Table, res *study.Results) error {
    fmt.Fprintln(w, "===================================================================")
    fmt.Fprintln(w, " Estudo de recidiva pós-prostatectomia radical")
    fmt.Fprintf(w, " Coorte: %d pacientes | desfecho: %s\n", t.NumRows(), res.Outcome)
    fmt.Fprintln(w, "===================================================================")
    fmt.Fprintln(w)

    fmt.Fprintln(w, "--- Coorte ---")
    for _, name := range t.Names() {
        if strings.HasPrefix(name, "risk_") { continue }
        col, _ := t.Column(name)
        if col.Kind == data.Numeric && !isBinary(col) {
            s, err := Describe(t, name)
            if err != nil { return err }
            fmt.Fprintf(w, "%-20s n=%-4d faltantes=%-3d média=%.2f dp=%.2f mín=%.2f q1=%.2f mediana=%.2f q3=%.2f máx=%.2f\n",
                s.Name, s.N, s.Missing, s.Mean, s.SD, s.Min, s.Q1, s.Median, s.Q3, s.Max)
            continue
        }
        ft, err := Frequencies(t, name)
        if err != nil { return err }
        fmt.Fprintf(w, "%-20s n=%-4d faltantes=%d\n", ft.Name, t.NumRows()-ft.Missing, ft.Missing)
        for _, lv := range ft.Levels {
            fmt.Fprintf(w, "    %-16s %4d  %5.1f%%\n", lv.Label, lv.Count, lv.Percent)
        }
    }
    fmt.Fprintln(w)

    fmt.Fprintln(w, "--- Modelos ---")
    for _, mr := range res.Models {
        fmt.Fprintf(w, "\nmodelo %s\n", mr.Name)
        if mr.ROC != nil {
            fmt.Fprintf(w, "  AUC=%.4f (%d positivos, %d negativos)\n", mr.ROC.AUC, mr.ROC.Pos, mr.ROC.Neg)
        } else {
            fmt.Fprintln(w, "  AUC indisponível para este score")
        }
        fmt.Fprintf(w, "  ajuste em %d linhas completas, %d iterações\n", mr.Model.NUsed, mr.Model.Iters)
        fmt.Fprintf(w, "  %-24s %12s %12s %14s\n", "termo", "estimativa", "erro padrão", "razão chances")
        writeCoefRow(w, "(intercepto)", mr.Model.Intercept, stderrAt(mr.Model.StdErr, 0))
        for j, cname := range mr.Names {
            writeCoefRow(w, cname, mr.Model.Coef[j], stderrAt(mr.Model.StdErr, j+1))
        }
    }
    fmt.Fprintln(w)

    fmt.Fprintln(w, "--- Ensemble ---")
    fmt.Fprintf(w, "média parcial dos riscos de %d modelos\n", len(res.Models))
    if res.EnsembleROC != nil {
        fmt.Fprintf(w, "AUC=%.4f (%d positivos, %d negativos)\n", res.EnsembleROC.AUC, res.EnsembleROC.Pos, res.EnsembleROC.Neg)
    } else {
        fmt.Fprintln(w, "AUC indisponível para o ensemble")
    }
    return nil
}

func writeCoefRow(w io.Writer, name string, est, se float64) {
    fmt.Fprintf(w, "  %-24s %12.4f %12.4f %14.4f\n", name, est, se, math.Exp(est))
}

func stderrAt(se []float64, i int) float64 {
    if i < len(se) { return se[i] }
    return math.NaN()
}

func isBinary(col data.Column) bool {
    seen := false
    for _, v := range col.Floats {
        if math.IsNaN(v) { continue }
        if v != 0 && v != 1 { return false }
        seen = true
    }
    return seen
}

// WriteAUCCSV grava uma linha por score avaliado: modelo, AUC e os totais de
// casos usados na curva.
func WriteAUCCSV(path string, res *study.Results) error {
    if err := ensureDir(path); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()

    w := csv.NewWriter(f)
    defer w.Flush()
    if err := w.Write([]string{"model", "auc", "n", "positives", "negatives"}); err != nil { return err }
    for _, mr := range res.Models {
        if err := w.Write(aucRecord(mr.Name, mr.ROC)); err != nil { return err }
    }
    if res.EnsembleRisk != nil {
        if err := w.Write(aucRecord("ensemble", res.EnsembleROC)); err != nil { return err }
    }
    return nil
}

func aucRecord(name string, roc *metrics.ROC) []string {
    if roc == nil { return []string{name, "NA", "NA", "NA", "NA"} }
    return []string{name, fmt.Sprintf("%.6f", roc.AUC), strconv.Itoa(roc.Pos + roc.Neg), strconv.Itoa(roc.Pos), strconv.Itoa(roc.Neg)}
}

// WriteROCCSV grava todos os pontos de todas as curvas, um modelo por bloco.
func WriteROCCSV(path string, res *study.Results) error {
    if err := ensureDir(path); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()

    w := csv.NewWriter(f)
    defer w.Flush()
    if err := w.Write([]string{"model", "limiar", "fpr", "tpr"}); err != nil { return err }
    for _, mr := range res.Models {
        if mr.ROC == nil { continue }
        if err := writePoints(w, mr.Name, mr.ROC); err != nil { return err }
    }
    if res.EnsembleROC != nil {
        if err := writePoints(w, "ensemble", res.EnsembleROC); err != nil { return err }
    }
    return nil
}

func writePoints(w *csv.Writer, name string, roc *metrics.ROC) error {
    for _, pt := range roc.Points {
        rec := []string{name, formatLimiar(pt.Limiar), fmt.Sprintf("%.6f", pt.FPR), fmt.Sprintf("%.6f", pt.TPR)}
        if err := w.Write(rec); err != nil { return err }
    }
    return nil
}

func formatLimiar(v float64) string {
    if math.IsInf(v, 1) { return "inf" }
    return fmt.Sprintf("%.6f", v)
}

// WriteTableCSV grava a tabela inteira, com as colunas de risco acrescidas,
// no mesmo formato aceito pelo carregador.
func WriteTableCSV(path string, t *data.Table) error {
    if err := ensureDir(path); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()

    w := csv.NewWriter(f)
    defer w.Flush()
    names := t.Names()
    if err := w.Write(names); err != nil { return err }
    for i := 0; i < t.NumRows(); i++ {
        rec := make([]string, len(names))
        for j, name := range names {
            col, _ := t.Column(name)
            rec[j] = cellString(col, i)
        }
        if err := w.Write(rec); err != nil { return err }
    }
    return nil
}

func cellString(col data.Column, i int) string {
    if col.Kind == data.Categorical {
        if col.Labels[i] == "" { return "NA" }
        return col.Labels[i]
    }
    v := col.Floats[i]
    if math.IsNaN(v) { return "NA" }
    return strconv.FormatFloat(v, 'f', -1, 64)
}

func ensureDir(path string) error {
    if dir := filepath.Dir(path); dir != "." {
        return os.MkdirAll(dir, 0o755)
    }
    return nil
}
