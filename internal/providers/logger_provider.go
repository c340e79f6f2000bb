package providers

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

// TypeEnum tags every log line with the subsystem it came from.
type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeHttp
	TypeLedger
	TypeEngine
)

func (t TypeEnum) String() string {
	switch t {
	case TypeHttp:
		return "http"
	case TypeLedger:
		return "ledger"
	case TypeEngine:
		return "engine"
	default:
		return "app"
	}
}

type Logger interface {
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Errorf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	log  zerolog.Logger
	file *os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	file, err := os.OpenFile(
		filepath.Join(conf.Logger.Dir, "masternode.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		os.FileMode(conf.Logger.Mode),
	)
	if err != nil {
		return nil, err
	}

	var w zerolog.LevelWriter = zerolog.MultiLevelWriter(file)
	if conf.Debug {
		w = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return &LogProvider{
		log:  zerolog.New(w).Level(level).With().Timestamp().Logger(),
		file: file,
	}, nil
}

func (p *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	p.log.Debug().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	p.log.Info().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	p.log.Warn().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	p.log.Error().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	p.log.Fatal().Str("type", t.String()).Msgf(format, args...)
}

func (p *LogProvider) Close() {
	_ = p.file.Close()
}
