package logger

import "sort"

// Handle - узкая граница с бекендом логирования. Фасад только порождает
// потомков, двигает пороги и пересылает записи; рендеринг, фильтрация
// и I/O остаются за реализацией.
type Handle interface {
	Child(fields map[string]any) Handle
	SetLevel(level Level)
	Sync() error

	Fatal(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// rootConfig - уже нормализованный Config для конкретного корня
type rootConfig struct {
	service    string
	version    string
	instanceID string
	dir        string
}

// newRootHandle выбирает бекенд по среде: zap+файл в prod, zerolog-консоль иначе
func newRootHandle(cfg Config, service string) Handle {
	cfg = cfg.withDefaults()
	rc := rootConfig{
		service:    service,
		version:    cfg.Version,
		instanceID: cfg.InstanceID,
		dir:        cfg.Dir,
	}

	if cfg.Env == EnvProd {
		return newProductionHandle(rc)
	}
	return newDevelopmentHandle(rc)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
