package utils

import (
    "os"
    "path/filepath"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Logger devolve o logger global do processo. LOG_LEVEL ajusta o nível
// (debug|info|warn|error) e LOG_FILE, quando definido, duplica a saída em
// JSON para o arquivo indicado. Logs vão para stderr; stdout fica livre
// para o relatório.
func Logger() *zap.Logger {
    if logger != nil { return logger }
    lvl := zapcore.InfoLevel
    if v := os.Getenv("LOG_LEVEL"); v != "" {
        if parsed, err := zapcore.ParseLevel(v); err == nil { lvl = parsed }
    }
    consoleEnc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
    console := zapcore.NewCore(consoleEnc, zapcore.AddSync(os.Stderr), lvl)

    logFile := os.Getenv("LOG_FILE")
    if logFile == "" {
        logger = zap.New(console)
        return logger
    }
    _ = os.MkdirAll(filepath.Dir(logFile), 0o755)
    f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        logger = zap.New(console)
        return logger
    }
    fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
    fileCore := zapcore.NewCore(fileEnc, zapcore.AddSync(f), lvl)
    logger = zap.New(zapcore.NewTee(fileCore, console))
    return logger
}
