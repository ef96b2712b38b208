// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench_test

import (
	"io"
	stdlog "log"
	"testing"

	gokitlog "github.com/go-kit/kit/log"
	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"golang.org/x/exp/logs"
	ogokit "golang.org/x/exp/logs/adapter/gokit"
	ologr "golang.org/x/exp/logs/adapter/logr"
	ologrus "golang.org/x/exp/logs/adapter/logrus"
	ozap "golang.org/x/exp/logs/adapter/zap"
	ozerolog "golang.org/x/exp/logs/adapter/zerolog"
	"golang.org/x/exp/logs/logtest"
)

func benchLogger(h logs.Handler) *logs.Logger {
	return logs.NewProvider(h, nil).Logger("StructuredLog")
}

func zapLogger() *logs.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(io.Discard),
		zapcore.DebugLevel,
	)
	return benchLogger(ozap.NewHandler(zap.New(core)))
}

func BenchmarkZapStructured(b *testing.B) {
	runSingle(b, zapLogger(), structured)
}

func BenchmarkZapStructuredConcurrent(b *testing.B) {
	runConcurrent(b, zapLogger(), structured)
}

func logrusLogger() *logs.Logger {
	ll := logrus.New()
	ll.SetOutput(io.Discard)
	ll.SetLevel(logrus.TraceLevel)
	return benchLogger(ologrus.NewHandler(ll))
}

func BenchmarkLogrusStructured(b *testing.B) {
	runSingle(b, logrusLogger(), structured)
}

func BenchmarkLogrusStructuredConcurrent(b *testing.B) {
	runConcurrent(b, logrusLogger(), structured)
}

func zerologLogger() *logs.Logger {
	return benchLogger(ozerolog.NewHandler(zerolog.New(io.Discard)))
}

func BenchmarkZerologStructured(b *testing.B) {
	runSingle(b, zerologLogger(), structured)
}

func BenchmarkZerologStructuredConcurrent(b *testing.B) {
	runConcurrent(b, zerologLogger(), structured)
}

func gokitLogger() *logs.Logger {
	l := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(io.Discard))
	return benchLogger(ogokit.NewHandler(l))
}

func BenchmarkGokitStructured(b *testing.B) {
	runSingle(b, gokitLogger(), structured)
}

func BenchmarkGokitStructuredConcurrent(b *testing.B) {
	runConcurrent(b, gokitLogger(), structured)
}

func logrLogger() *logs.Logger {
	l := funcr.New(func(prefix, args string) {}, funcr.Options{Verbosity: 2})
	return benchLogger(ologr.NewHandler(l))
}

func BenchmarkLogrStructured(b *testing.B) {
	runSingle(b, logrLogger(), structured)
}

func BenchmarkLogrStructuredConcurrent(b *testing.B) {
	runConcurrent(b, logrLogger(), structured)
}

// The stdlib benchmarks log the same information through log.Printf, as a
// point of comparison for the structured scenarios above.
func BenchmarkStdlibPrintf(b *testing.B) {
	l := stdlog.New(io.Discard, "", stdlog.LstdFlags)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Printf("This is a simple structured log message from %d:%d", 12347, 12348)
	}
}

func BenchmarkStdlibPrintfConcurrent(b *testing.B) {
	l := stdlog.New(io.Discard, "", stdlog.LstdFlags)
	logtest.RunConcurrent(b, func() {
		l.Printf("This is a simple structured log message from %d:%d", 12347, 12348)
	})
}
