package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// newDevelopmentHandle строит консольный pretty-бекенд: цветной вывод,
// base поле {service}, уровень debug. service/module убираются из тела
// записи и рендерятся префиксом "[service|module]" перед сообщением.
func newDevelopmentHandle(rc rootConfig) Handle {
	cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stdout
		w.TimeFormat = time.Kitchen
		w.FieldsExclude = []string{"service", "module"}
		w.FormatPrepare = prefixServiceModule
	})

	ctx := zerolog.New(cw).With().Timestamp().Str("service", rc.service)
	if rc.instanceID != "" {
		ctx = ctx.Str("instance_id", rc.instanceID)
	}

	return &zerologHandle{log: ctx.Logger().Level(zerolog.DebugLevel)}
}

func prefixServiceModule(evt map[string]any) error {
	svc, _ := evt["service"].(string)
	if svc == "" {
		return nil
	}

	prefix := "[" + svc
	if mod, ok := evt["module"].(string); ok && mod != "" {
		prefix += "|" + mod
	}
	prefix += "]"

	msg, _ := evt[zerolog.MessageFieldName].(string)
	evt[zerolog.MessageFieldName] = prefix + " " + msg
	return nil
}

// zerologHandle меняет уровень заменой значения логгера, поэтому чтение
// и запись log идут под RWMutex
type zerologHandle struct {
	mu  sync.RWMutex
	log zerolog.Logger
}

func (h *zerologHandle) Child(fields map[string]any) Handle {
	h.mu.RLock()
	parent := h.log
	h.mu.RUnlock()

	return &zerologHandle{log: parent.With().Fields(fields).Logger()}
}

func (h *zerologHandle) SetLevel(level Level) {
	h.mu.Lock()
	h.log = h.log.Level(toZerologLevel(level))
	h.mu.Unlock()
}

// Sync: консольный вывод пишется синхронно, сбрасывать нечего
func (h *zerologHandle) Sync() error {
	return nil
}

func (h *zerologHandle) Fatal(msg string, args ...any) { h.emit(zerolog.FatalLevel, msg, args) }

func (h *zerologHandle) Error(msg string, args ...any) { h.emit(zerolog.ErrorLevel, msg, args) }

func (h *zerologHandle) Warn(msg string, args ...any) { h.emit(zerolog.WarnLevel, msg, args) }

func (h *zerologHandle) Info(msg string, args ...any) { h.emit(zerolog.InfoLevel, msg, args) }

func (h *zerologHandle) Debug(msg string, args ...any) { h.emit(zerolog.DebugLevel, msg, args) }

// emit использует WithLevel: в отличие от zerolog.Fatal он не завершает
// процесс, fatal у фасада - обычный уровень
func (h *zerologHandle) emit(lvl zerolog.Level, msg string, args []any) {
	h.mu.RLock()
	l := h.log
	h.mu.RUnlock()

	l.WithLevel(lvl).Fields(args).Msg(msg)
}

func toZerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
