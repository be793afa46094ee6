package main

import (
    "flag"
    "io"
    "os"
    "path/filepath"

    "go.uber.org/multierr"
    "go.uber.org/zap"

    "recidiva/internal/data"
    "recidiva/internal/report"
    "recidiva/internal/study"
    "recidiva/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    dataPath := flag.String("data", "data/coorte.csv", "Caminho do CSV da coorte")
    regen := flag.Bool("regen", false, "Regenerar a coorte sintética antes do estudo")
    n := flag.Int("n", 316, "Número de pacientes sintéticos")
    seed := flag.Int64("seed", 42, "Semente do gerador sintético")
    configPath := flag.String("config", "", "YAML do estudo (vazio usa o desenho padrão)")
    outReport := flag.String("out-report", "out/relatorio.txt", "Relatório em texto")
    outAUC := flag.String("out-auc", "out/auc.csv", "CSV de AUC por modelo")
    outROC := flag.String("out-roc", "out/roc.csv", "CSV dos pontos das curvas ROC")
    outImg := flag.String("out-img", "out/roc.png", "PNG das curvas ROC")
    outScored := flag.String("out-scored", "out/coorte_scored.csv", "Coorte com as colunas de risco")
    flag.Parse()

    if *regen {
        logger.Info("Gerando coorte sintética", zap.Int("n", *n), zap.Int64("seed", *seed), zap.String("out", *dataPath))
        if err := data.GenerateSyntheticCohort(*n, *seed, *dataPath); err != nil {
            logger.Fatal("Falha ao gerar coorte", zap.Error(err))
        }
    }

    cfg := study.DefaultConfig()
    if *configPath != "" {
        c, err := study.LoadConfig(*configPath)
        if err != nil { logger.Fatal("Falha ao carregar configuração", zap.Error(err)) }
        cfg = c
    }

    t, err := data.LoadCSV(*dataPath)
    if err != nil { logger.Fatal("Falha ao carregar coorte", zap.Error(err)) }
    logger.Info("Coorte carregada", zap.Int("pacientes", t.NumRows()), zap.Int("colunas", t.NumCols()))

    res, errs := study.Run(t, cfg, logger)
    if res == nil { logger.Fatal("Estudo sem resultados", zap.Error(errs)) }
    for _, e := range multierr.Errors(errs) {
        logger.Warn("Falha parcial do estudo", zap.Error(e))
    }

    if err := os.MkdirAll(filepath.Dir(*outReport), 0o755); err != nil {
        logger.Fatal("Falha ao criar diretório de saída", zap.Error(err))
    }
    rf, err := os.Create(*outReport)
    if err != nil { logger.Fatal("Falha ao criar relatório", zap.Error(err)) }
    defer rf.Close()
    if err := report.WriteText(io.MultiWriter(os.Stdout, rf), t, res); err != nil {
        logger.Fatal("Falha ao escrever relatório", zap.Error(err))
    }

    if err := report.WriteAUCCSV(*outAUC, res); err != nil {
        logger.Warn("Falha ao salvar CSV de AUC", zap.Error(err))
    }
    if err := report.WriteROCCSV(*outROC, res); err != nil {
        logger.Warn("Falha ao salvar CSV das curvas", zap.Error(err))
    }
    if err := report.SaveROCPlot(*outImg, res); err != nil {
        logger.Warn("Falha ao salvar PNG das curvas", zap.Error(err))
    } else {
        logger.Info("Curvas ROC geradas", zap.String("png", *outImg), zap.String("csv", *outROC))
    }
    if err := report.WriteTableCSV(*outScored, t); err != nil {
        logger.Warn("Falha ao salvar coorte pontuada", zap.Error(err))
    }
    logger.Info("Estudo concluído", zap.String("relatorio", *outReport), zap.Int("modelos", len(res.Models)))
}
