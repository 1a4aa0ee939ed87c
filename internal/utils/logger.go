package utils

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. format is "json" or "console".
func NewLogger(level, format string) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = "time"

	var encoder zapcore.Encoder
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), ParseLevel(level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LogEvent writes a standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(logger *zap.Logger, requestID, module, action, message string, fields ...zap.Field) {
	if logger == nil {
		return
	}
	base := []zap.Field{
		zap.String("module", strings.ToLower(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	}
	logger.Info(message, append(base, fields...)...)
}
