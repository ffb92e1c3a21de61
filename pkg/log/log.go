// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"io"
	"math"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kaleido-io/cchecksum/pkg/ccconf"
	"github.com/kaleido-io/cchecksum/pkg/confutil"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	rootLogger = logrus.NewEntry(logrus.StandardLogger())

	// L accesses the current logger from the context
	L = loggerFromContext

	initAtLeastOnce atomic.Bool
)

type ctxLogKey struct{}

const maxFieldLen = 61

func InitConfig(conf *ccconf.LogConfig) {
	initAtLeastOnce.Store(true) // must store before SetLevel
	defs := ccconf.LogDefaults

	SetLevel(confutil.StringNotEmpty(conf.Level, *defs.Level))

	if out := outputFor(conf); out != nil {
		logrus.SetOutput(out)
	}

	jsonConf, jsonDefs := &conf.JSON, &defs.JSON
	setFormatting(&formatting{
		format:          confutil.StringNotEmpty(conf.Format, *defs.Format),
		disableColor:    confutil.Bool(conf.DisableColor, *defs.DisableColor),
		forceColor:      confutil.Bool(conf.ForceColor, *defs.ForceColor),
		timestampFormat: confutil.StringNotEmpty(conf.TimeFormat, *defs.TimeFormat),
		utc:             confutil.Bool(conf.UTC, *defs.UTC),
		jsonFields: logrus.FieldMap{
			logrus.FieldKeyTime:  confutil.StringNotEmpty(jsonConf.TimestampField, *jsonDefs.TimestampField),
			logrus.FieldKeyLevel: confutil.StringNotEmpty(jsonConf.LevelField, *jsonDefs.LevelField),
			logrus.FieldKeyMsg:   confutil.StringNotEmpty(jsonConf.MessageField, *jsonDefs.MessageField),
			logrus.FieldKeyFunc:  confutil.StringNotEmpty(jsonConf.FuncField, *jsonDefs.FuncField),
			logrus.FieldKeyFile:  confutil.StringNotEmpty(jsonConf.FileField, *jsonDefs.FileField),
		},
	})
}

// outputFor returns nil when the current output should be left alone
func outputFor(conf *ccconf.LogConfig) io.Writer {
	defs := &ccconf.LogDefaults.File
	switch confutil.StringNotEmpty(conf.Output, *ccconf.LogDefaults.Output) {
	case "file":
		filename := confutil.StringNotEmpty(conf.File.Filename, *defs.Filename)
		rootLogger.Infof("Logs diverted to %s", filename)
		maxSizeBytes := confutil.ByteSize(conf.File.MaxSize, 0, *defs.MaxSize)
		maxAge := confutil.DurationMin(conf.File.MaxAge, 0, *defs.MaxAge)
		return &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    int(math.Ceil(float64(maxSizeBytes) / 1024 / 1024)), // megabytes, rounded up
			MaxBackups: confutil.IntMin(conf.File.MaxBackups, 0, *defs.MaxBackups),
			MaxAge:     int(math.Ceil(float64(maxAge) / float64(time.Hour) / 24)), // days, rounded up
			Compress:   confutil.Bool(conf.File.Compress, *defs.Compress),
		}
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	default:
		return nil
	}
}

func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

func IsTraceEnabled() bool {
	return logrus.IsLevelEnabled(logrus.TraceLevel)
}

// EnsureInit applies the default config if nothing has initialized logging yet,
// which is the normal case for a library embedded in someone else's process
func EnsureInit() {
	if !initAtLeastOnce.Load() {
		InitConfig(&ccconf.LogConfig{})
	}
}

// WithLogger adds the specified logger to the context
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	EnsureInit()
	return context.WithValue(ctx, ctxLogKey{}, logger)
}

// WithLogField adds the specified field to the logger in the context, truncating long values
func WithLogField(ctx context.Context, key, value string) context.Context {
	EnsureInit()
	if len(value) > maxFieldLen {
		value = value[0:maxFieldLen] + "..."
	}
	return WithLogger(ctx, loggerFromContext(ctx).WithField(key, value))
}

func loggerFromContext(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(ctxLogKey{})
	if logger == nil {
		return rootLogger
	}
	return logger.(*logrus.Entry)
}

func GetLevel() string {
	switch logrus.GetLevel() {
	case logrus.ErrorLevel:
		return "error"
	case logrus.WarnLevel:
		return "warn"
	case logrus.DebugLevel:
		return "debug"
	case logrus.TraceLevel:
		return "trace"
	default:
		return "info"
	}
}

func SetLevel(level string) {
	var l logrus.Level
	switch strings.ToLower(level) {
	case "error":
		l = logrus.ErrorLevel
	case "warn", "warning":
		l = logrus.WarnLevel
	case "debug":
		l = logrus.DebugLevel
	case "trace":
		l = logrus.TraceLevel
	default:
		l = logrus.InfoLevel
	}
	logrus.SetLevel(l)
}

type formatting struct {
	format          string
	disableColor    bool
	forceColor      bool
	timestampFormat string
	utc             bool
	jsonFields      logrus.FieldMap
}

type utcFormat struct {
	f logrus.Formatter
}

func (utc *utcFormat) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return utc.f.Format(e)
}

func setFormatting(f *formatting) {
	var formatter logrus.Formatter
	reportCaller := false
	switch f.format {
	case "json":
		formatter = &logrus.JSONFormatter{
			TimestampFormat: f.timestampFormat,
			FieldMap:        f.jsonFields,
		}
	case "detailed":
		formatter = &logrus.TextFormatter{
			DisableColors:   f.disableColor,
			ForceColors:     f.forceColor,
			TimestampFormat: f.timestampFormat,
			FullTimestamp:   true,
		}
		reportCaller = true
	default:
		formatter = &prefixed.TextFormatter{
			DisableColors:   f.disableColor,
			ForceColors:     f.forceColor,
			TimestampFormat: f.timestampFormat,
			ForceFormatting: true,
			FullTimestamp:   true,
		}
	}
	if f.utc {
		formatter = &utcFormat{f: formatter}
	}
	logrus.SetReportCaller(reportCaller)
	logrus.SetFormatter(formatter)
}
