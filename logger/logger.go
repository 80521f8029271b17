package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults.
var Log = logrus.New()

// Options configures Init. Empty fields fall back to the LOG_LEVEL and
// LOG_FORMAT environment variables, then to info level text output on stdout.
type Options struct {
	Level  string
	Format string
	// File, when set, sends output to a size-rotated log file instead of stdout.
	File string
}

// Init configures Log. Call once from main.
func Init(opts Options) {
	Log = logrus.New()

	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   opts.File == "",
		})
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		}
	}
	Log.SetOutput(out)
}

// Silence discards all output. Tests call it to keep their logs readable.
func Silence() {
	Log.SetOutput(io.Discard)
}
