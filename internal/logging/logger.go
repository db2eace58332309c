package logging

import (
	"os"
	"strings"

	"github.com/2beens/fitlog/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:  params.LogFileName,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}

	if params.LogToStdout {
		logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, fileLogger))
		logrus.Printf("writing logs to [%s] and STDOUT", params.LogFileName)
	} else {
		logrus.SetOutput(fileLogger)
	}
}

func setupSentry(params LoggerSetupParams) {
	if params.SentryDSN == "" {
		logrus.Warnln("sentry enabled, but DSN not set, use SENTRY_DSN env var to set it")
		return
	}

	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

// GetLevel maps a level name to a logrus level, unknown names resolve to trace.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}
