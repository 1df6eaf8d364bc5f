package logger

import "sync"

// Registry владеет корневыми логгерами, по одному на имя сервиса.
// Явный объект, а не состояние пакета: реестров может быть сколько
// угодно (тесты, встраивание). Корни живут вместе с реестром,
// вытеснения нет.
type Registry struct {
	mu        sync.Mutex
	cfg       Config
	instances map[string]*Logger
}

func NewRegistry(cfg Config) *Registry {
	if cfg.Service == "" {
		cfg.Service = defaultService()
	}
	return &Registry{
		cfg:       cfg,
		instances: make(map[string]*Logger),
	}
}

// GetInstance возвращает кешированный корень сервиса, создавая его при
// первом обращении. Пустое имя - ключ сервиса по умолчанию. Не падает:
// среда читается и бекенд выбирается в момент создания корня
// (prod - файл+zap, иначе - консоль).
func (r *Registry) GetInstance(service string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service == "" {
		service = r.cfg.Service
	}
	if l, ok := r.instances[service]; ok {
		return l
	}

	l := New(newRootHandle(r.cfg, service))
	r.instances[service] = l
	return l
}
