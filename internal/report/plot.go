package report

import (
    "image/color"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"

    "recidiva/internal/metrics"
    "recidiva/internal/study"
)

// SaveROCPlot desenha as curvas ROC dos modelos e do ensemble num PNG,
// com a diagonal do acaso tracejada.
func SaveROCPlot(path string, res *study.Results) error {
    p := plot.New()
    p.Title.Text = "Curvas ROC do estudo de recidiva"
    p.X.Label.Text = "Taxa de falsos positivos"
    p.Y.Label.Text = "Taxa de verdadeiros positivos"
    p.X.Min, p.X.Max = 0, 1
    p.Y.Min, p.Y.Max = 0, 1

    args := []interface{}{}
    for _, mr := range res.Models {
        if mr.ROC == nil { continue }
        args = append(args, mr.Name, rocXY(mr.ROC))
    }
    if res.EnsembleROC != nil {
        args = append(args, "ensemble", rocXY(res.EnsembleROC))
    }
    if len(args) > 0 {
        if err := plotutil.AddLinePoints(p, args...); err != nil { return err }
    }

    diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
    if err != nil { return err }
    diag.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
    diag.Color = color.Gray{Y: 0x90}
    p.Add(diag)
    p.Legend.Add("acaso", diag)

    if err := ensureDir(path); err != nil { return err }
    return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func rocXY(roc *metrics.ROC) plotter.XYs {
    pts := make(plotter.XYs, len(roc.Points))
    for i, pt := range roc.Points {
        pts[i].X = pt.FPR
        pts[i].Y = pt.TPR
    }
    return pts
}
