package logger

import (
	"path"
	"runtime/debug"
	"strings"
)

// Level задает порог важности записей: debug < info < warn < error < fatal.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseLevel распознает текстовый уровень, по умолчанию info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

type Config struct {
	// Метаданные для логгера
	Service    string // ключ по умолчанию для GetInstance("")
	Version    string // попадает в base поля prod-режима
	InstanceID string // опционально: поле instance_id в base

	// Управление выводом
	Env Env    // default: DetectEnv()
	Dir string // каталог файловых логов, default: LOG_DIR или "logs"
}

// withDefaults заполняет пропуски из окружения и метаданных сборки
func (c Config) withDefaults() Config {
	if c.Service == "" {
		c.Service = defaultService()
	}
	if c.Version == "" {
		c.Version = defaultVersion()
	}
	if c.Env == "" {
		c.Env = DetectEnv()
	}
	if c.Dir == "" {
		c.Dir = LogDir()
	}
	return c
}

func defaultService() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Path != "" {
		return path.Base(bi.Main.Path)
	}
	return "app"
}

func defaultVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "0.0.0"
}
