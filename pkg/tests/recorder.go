package tests

import (
	"fmt"

	"github.com/cwrk-planet/logger/pkg/logger"
)

type call struct {
	method string
	msg    string
	args   []any
}

// recorderTree собирает все handle дерева и общий журнал SetLevel,
// чтобы проверять порядок каскада
type recorderTree struct {
	handles []*recorderHandle
	journal []string
}

// recorderHandle реализует logger.Handle без настоящего бекенда
type recorderHandle struct {
	tree   *recorderTree
	id     string
	fields map[string]any
	level  logger.Level
	calls  []call
	syncs  int
}

func newRecorderTree() (*recorderTree, *recorderHandle) {
	t := &recorderTree{}
	root := &recorderHandle{tree: t, id: "root", level: logger.LevelInfo}
	t.handles = append(t.handles, root)
	return t, root
}

func (t *recorderTree) find(id string) *recorderHandle {
	for _, h := range t.handles {
		if h.id == id {
			return h
		}
	}
	return nil
}

func (r *recorderHandle) Child(fields map[string]any) logger.Handle {
	id := r.id + "/" + fmt.Sprint(fields["module"])
	c := &recorderHandle{
		tree:   r.tree,
		id:     id,
		fields: fields,
		level:  r.level, // производный handle наследует порог на момент создания
	}
	r.tree.handles = append(r.tree.handles, c)
	return c
}

func (r *recorderHandle) SetLevel(level logger.Level) {
	r.level = level
	r.tree.journal = append(r.tree.journal, r.id)
}

func (r *recorderHandle) Sync() error {
	r.syncs++
	return nil
}

func (r *recorderHandle) record(method, msg string, args []any) {
	r.calls = append(r.calls, call{method: method, msg: msg, args: args})
}

func (r *recorderHandle) Fatal(msg string, args ...any) { r.record("fatal", msg, args) }

func (r *recorderHandle) Error(msg string, args ...any) { r.record("error", msg, args) }

func (r *recorderHandle) Warn(msg string, args ...any) { r.record("warn", msg, args) }

func (r *recorderHandle) Info(msg string, args ...any) { r.record("info", msg, args) }

func (r *recorderHandle) Debug(msg string, args ...any) { r.record("debug", msg, args) }
