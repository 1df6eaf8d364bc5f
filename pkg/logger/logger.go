// Package logger: корневые логгеры по сервисам и их модульные потомки
// с каскадным изменением уровня.
package logger

import "sync"

// Logger - узел дерева логгеров: корень из Registry или потомок через
// Child. Запись уходит напрямую в backend handle, узел хранит только
// потомков и двигает пороги.
type Logger struct {
	mu       sync.Mutex
	handle   Handle
	children []*Logger
}

// New оборачивает готовый Handle в отдельный узел. Корни обычно строит
// Registry; New - шов для тестов и встраивания со своим Handle.
func New(h Handle) *Logger {
	return &Logger{handle: h}
}

// Bindings - поля производного логгера; ключ "name" станет "module"
type Bindings map[string]any

// Child создает модульный узел и записывает его в children родителя.
// Ключ "name" переименовывается в "module" до передачи бекенду: явный
// "module" проигрывает "name", а без "name" поле module не пишется вовсе.
func (l *Logger) Child(b Bindings) *Logger {
	fields := make(map[string]any, len(b))
	for k, v := range b {
		if k == "name" {
			continue
		}
		fields[k] = v
	}
	if name, ok := b["name"]; ok {
		fields["module"] = name
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	child := New(l.handle.Child(fields))
	l.children = append(l.children, child)
	return child
}

// SetLevel устанавливает порог узла и каскадом - всех потомков (pre-order).
// Узлы, созданные после вызова, наследуют уровень родителя на момент создания.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.handle.SetLevel(level)
	for _, c := range l.children {
		c.SetLevel(level)
	}
}

// Sync сбрасывает буферы бекенда best-effort. Буферизует только
// файловый prod-бекенд; потеря буфера при резком завершении допустима.
func (l *Logger) Sync() error {
	return l.handle.Sync()
}

// Fatal пишет запись уровня fatal и сбрасывает буфер. Процесс не
// завершает - жизненный цикл остается за вызывающим.
func (l *Logger) Fatal(msg string, args ...any) { l.handle.Fatal(msg, args...) }

func (l *Logger) Error(msg string, args ...any) { l.handle.Error(msg, args...) }

func (l *Logger) Warn(msg string, args ...any) { l.handle.Warn(msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.handle.Info(msg, args...) }

func (l *Logger) Debug(msg string, args ...any) { l.handle.Debug(msg, args...) }
