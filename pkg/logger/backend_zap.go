package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFileName = "app.log"

// newProductionHandle строит файловый JSON-бекенд: ISO-8601 timestamp,
// messageKey "message", base поля {env, version, service}, уровень info
func newProductionHandle(rc rootConfig) Handle {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.MessageKey = "message"
	enc := zapcore.NewJSONEncoder(encCfg)

	// Сore пропускает все, порог держит gatedCore каждого handle
	core := zapcore.NewCore(enc, openLogSink(rc.dir), zapcore.DebugLevel)

	fields := []zapcore.Field{
		zap.String("env", string(EnvProd)),
		zap.String("version", rc.version),
		zap.String("service", rc.service),
	}
	if rc.instanceID != "" {
		fields = append(fields, zap.String("instance_id", rc.instanceID))
	}

	return newZapHandle(core, fields, zap.NewAtomicLevelAt(zapcore.InfoLevel))
}

// openLogSink открывает <dir>/app.log c буферизованной неблокирующей
// записью; при недоступности файла деградирует в stderr, чтобы
// конструктор корня оставался тотальным
func openLogSink(dir string) zapcore.WriteSyncer {
	if err := os.MkdirAll(dir, 0o755); err == nil {
		f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			return &zapcore.BufferedWriteSyncer{
				WS:            zapcore.AddSync(f),
				FlushInterval: time.Second,
			}
		}
	}
	return zapcore.Lock(os.Stderr)
}

// zapHandle держит общий core и накопленные поля, чтобы производные
// handle получали собственный изменяемый порог поверх того же sink
type zapHandle struct {
	lvl    zap.AtomicLevel
	core   zapcore.Core
	fields []zapcore.Field
	log    *zap.SugaredLogger
}

func newZapHandle(core zapcore.Core, fields []zapcore.Field, lvl zap.AtomicLevel) *zapHandle {
	z := zap.New(
		&gatedCore{Core: core, lvl: lvl},
		// fatal логирует и сбрасывает буфер, но не завершает процесс
		zap.WithFatalHook(noopFatalHook{}),
	).With(fields...)

	return &zapHandle{lvl: lvl, core: core, fields: fields, log: z.Sugar()}
}

func (h *zapHandle) Child(fields map[string]any) Handle {
	nf := make([]zapcore.Field, 0, len(h.fields)+len(fields))
	nf = append(nf, h.fields...)
	for _, k := range sortedKeys(fields) {
		nf = append(nf, zap.Any(k, fields[k]))
	}
	return newZapHandle(h.core, nf, zap.NewAtomicLevelAt(h.lvl.Level()))
}

func (h *zapHandle) SetLevel(level Level) {
	h.lvl.SetLevel(toZapLevel(level))
}

func (h *zapHandle) Sync() error {
	return h.log.Sync()
}

func (h *zapHandle) Fatal(msg string, args ...any) {
	h.log.Fatalw(msg, args...)
	_ = h.log.Sync()
}

func (h *zapHandle) Error(msg string, args ...any) { h.log.Errorw(msg, args...) }

func (h *zapHandle) Warn(msg string, args ...any) { h.log.Warnw(msg, args...) }

func (h *zapHandle) Info(msg string, args ...any) { h.log.Infow(msg, args...) }

func (h *zapHandle) Debug(msg string, args ...any) { h.log.Debugw(msg, args...) }

// noopFatalHook возвращает управление вызывающему после записи fatal.
// Сентинел zapcore.WriteThenNoop не годится: zap трактует его как
// "хук не задан" и подставляет WriteThenFatal c os.Exit(1)
type noopFatalHook struct{}

func (noopFatalHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {}

// gatedCore фильтрует записи по AtomicLevel конкретного handle: core
// общий, а пороги у узлов дерева независимые
type gatedCore struct {
	zapcore.Core
	lvl zap.AtomicLevel
}

func (c *gatedCore) Enabled(l zapcore.Level) bool {
	return c.lvl.Enabled(l)
}

func (c *gatedCore) With(fields []zapcore.Field) zapcore.Core {
	return &gatedCore{Core: c.Core.With(fields), lvl: c.lvl}
}

func (c *gatedCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func toZapLevel(l Level) zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
