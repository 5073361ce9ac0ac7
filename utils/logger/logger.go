package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/sailfin-io/tap-xero/constants"
	"github.com/sailfin-io/tap-xero/types"
	"github.com/sailfin-io/tap-xero/utils"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger zerolog.Logger

	// protocol messages are written to stdout; diagnostics never are
	stdoutMu     sync.Mutex
	stdoutWriter = bufio.NewWriter(os.Stdout)
)

func init() {
	// usable before Init for early failures
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Init wires the console logger and rotated file sink. Uses CONFIG_FOLDER.
func Init() {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(viper.GetString(constants.ConfigFolder), "logs", "sync.log"),
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	}
	logger = zerolog.New(zerolog.MultiLevelWriter(console, fileSink)).
		With().Timestamp().Logger()
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

func Info(v ...any) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Error(v ...any) {
	logger.Error().Msg(fmt.Sprint(v...))
}

// Fatal flushes pending protocol output before exiting non-zero so already
// extracted records and bookmarks are not lost.
func Fatal(v ...any) {
	Flush()
	logger.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	Flush()
	logger.Fatal().Msgf(format, v...)
}

func writeMessage(message types.Message) {
	data, err := json.Marshal(message)
	if err != nil {
		Errorf("failed to marshal %s message: %s", message.Type, err)
		return
	}
	stdoutMu.Lock()
	defer stdoutMu.Unlock()
	_, _ = stdoutWriter.Write(data)
	_, _ = stdoutWriter.WriteString("\n")
}

// Flush drains buffered protocol messages to stdout.
func Flush() {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()
	_ = stdoutWriter.Flush()
}

func LogSpec(spec map[string]any) {
	writeMessage(types.Message{
		Type: types.SpecMessage,
		Spec: spec,
	})
	Flush()
	Info("Here is the configuration spec for the connector")
}

func LogConnectionStatus(err error) {
	message := types.Message{
		Type: types.ConnectionStatusMessage,
		ConnectionStatus: &types.StatusRow{
			Status: types.ConnectionSucceed,
		},
	}
	if err != nil {
		message.ConnectionStatus.Status = types.ConnectionFailed
		message.ConnectionStatus.Message = err.Error()
	}
	writeMessage(message)
	Flush()
}

// LogCatalog emits the catalog message and persists it at STREAMS_PATH for
// later sync runs.
func LogCatalog(streams []*types.Stream) error {
	catalog := types.GetWrappedCatalog(streams)
	writeMessage(types.Message{
		Type:    types.CatalogMessage,
		Catalog: catalog,
	})
	Flush()
	return utils.WriteFile(viper.GetString(constants.StreamsPath), catalog)
}

// LogState emits the state message and persists it at STATE_PATH so a later
// run resumes from the committed bookmarks.
func LogState(state *types.State) error {
	writeMessage(types.Message{
		Type:  types.StateMessage,
		State: state,
	})
	Flush()
	return utils.WriteFile(viper.GetString(constants.StatePath), state)
}

func LogRecord(stream string, record types.Record, bookmark any) {
	writeMessage(types.Message{
		Type: types.RecordMessage,
		Record: &types.RecordRow{
			Stream:   stream,
			Data:     record,
			Bookmark: bookmark,
		},
	})
}

