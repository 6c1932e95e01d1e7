package base_service

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var GlobalLogger *zerolog.Logger
var LogFile *os.File
var LogLevel = zerolog.InfoLevel

func formatLevel(i interface{}) string {
	return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
}

// CreateLog installs the global logger writing to stderr and, when file is
// not empty, appending to file as well.
func CreateLog(level zerolog.Level, file string) error {
	return createLog(os.Stderr, level, file)
}

func createLog(out io.Writer, level zerolog.Level, file string) error {
	LogLevel = level
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(LogLevel)
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime, NoColor: false}
	output.FormatLevel = formatLevel
	writers := []io.Writer{output}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			return fmt.Errorf("[log] failed to open log file: %w", err)
		}
		fileWriter := zerolog.ConsoleWriter{Out: f, TimeFormat: time.DateTime, NoColor: true}
		fileWriter.FormatLevel = formatLevel
		writers = append(writers, fileWriter)
		CloseLog()
		LogFile = f
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	GlobalLogger = &log.Logger
	return nil
}

func CloseLog() {
	if LogFile != nil {
		_ = LogFile.Close()
		LogFile = nil
	}
}

// GetLogger returns a child of the current global logger. Call it at the
// point of logging so loggers follow later CreateLog calls.
func GetLogger(module string) *zerolog.Logger {
	if GlobalLogger == nil {
		_ = CreateLog(LogLevel, "")
	}
	logger := GlobalLogger.With().Str("module", module).Logger()
	return &logger
}
