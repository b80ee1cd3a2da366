// Package logging zap 로거 생성
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New stderr 로 쓰는 콘솔 로거. verbose 이면 debug 레벨까지 출력한다.
// 리포트는 stdout 으로 나가므로 로그와 섞이지 않는다.
func New(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.TimeKey = ""

	var opts []zap.Option
	if verbose {
		opts = append(opts, zap.AddCaller())
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core, opts...).Sugar()
}

// Nop 테스트용 로거
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
