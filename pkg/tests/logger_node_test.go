package tests

import (
	"reflect"
	"testing"

	"github.com/cwrk-planet/logger/pkg/logger"
)

func TestChild_RenamesNameToModule(t *testing.T) {
	tree, root := newRecorderTree()
	l := logger.New(root)

	l.Child(logger.Bindings{"name": "modA", "foo": "bar"})

	h := tree.find("root/modA")
	if h == nil {
		t.Fatalf("child handle not derived")
	}
	want := map[string]any{"foo": "bar", "module": "modA"}
	if !reflect.DeepEqual(h.fields, want) {
		t.Fatalf("bindings mismatch: got %v, want %v", h.fields, want)
	}
}

func TestChild_WithoutNameOmitsModule(t *testing.T) {
	tree, root := newRecorderTree()
	l := logger.New(root)

	l.Child(logger.Bindings{"foo": "bar"})

	h := tree.handles[1]
	if _, ok := h.fields["module"]; ok {
		t.Fatalf("module must be omitted when name is absent, got %v", h.fields)
	}
	if h.fields["foo"] != "bar" {
		t.Fatalf("remaining bindings must pass through, got %v", h.fields)
	}
}

func TestChild_NameWinsOverExplicitModule(t *testing.T) {
	tree, root := newRecorderTree()
	l := logger.New(root)

	l.Child(logger.Bindings{"name": "real", "module": "fake"})

	if got := tree.handles[1].fields["module"]; got != "real" {
		t.Fatalf("name must override an explicit module binding, got %v", got)
	}
}

func TestSetLevel_CascadesPreOrder(t *testing.T) {
	tree, root := newRecorderTree()
	l := logger.New(root)

	a := l.Child(logger.Bindings{"name": "a"})
	l.Child(logger.Bindings{"name": "b"})
	a.Child(logger.Bindings{"name": "g"})

	l.SetLevel(logger.LevelError)

	for _, h := range tree.handles {
		if h.level != logger.LevelError {
			t.Fatalf("handle %s not cascaded, level=%v", h.id, h.level)
		}
	}

	want := []string{"root", "root/a", "root/a/g", "root/b"}
	if !reflect.DeepEqual(tree.journal, want) {
		t.Fatalf("cascade order mismatch: got %v, want %v", tree.journal, want)
	}
}

func TestSetLevel_ScopedToSubtree(t *testing.T) {
	tree, root := newRecorderTree()
	l := logger.New(root)

	a := l.Child(logger.Bindings{"name": "a"})
	l.Child(logger.Bindings{"name": "b"})
	a.Child(logger.Bindings{"name": "g"})

	a.SetLevel(logger.LevelWarn)

	if tree.find("root/a").level != logger.LevelWarn || tree.find("root/a/g").level != logger.LevelWarn {
		t.Fatalf("subtree must adopt the new level")
	}
	if tree.find("root").level != logger.LevelInfo {
		t.Fatalf("ancestor must keep its level")
	}
	if tree.find("root/b").level != logger.LevelInfo {
		t.Fatalf("sibling must keep its level")
	}
}

func TestSetLevel_IsOneTimePush(t *testing.T) {
	tree, root := newRecorderTree()
	l := logger.New(root)

	l.SetLevel(logger.LevelError)
	l.Child(logger.Bindings{"name": "late"})

	// поздний потомок унаследовал порог при создании, без каскада
	if got := tree.find("root/late").level; got != logger.LevelError {
		t.Fatalf("derivation must inherit the current level, got %v", got)
	}
	if len(tree.journal) != 1 {
		t.Fatalf("cascade must only touch nodes existing at call time: %v", tree.journal)
	}

	l.SetLevel(logger.LevelDebug)
	want := []string{"root", "root", "root/late"}
	if !reflect.DeepEqual(tree.journal, want) {
		t.Fatalf("later cascade must include the new child: %v", tree.journal)
	}
}

func TestLeveledCalls_ForwardVerbatim(t *testing.T) {
	tree, root := newRecorderTree()
	l := logger.New(root)
	child := l.Child(logger.Bindings{"name": "modA"})

	nodes := map[string]struct {
		node   *logger.Logger
		handle func() *recorderHandle
	}{
		"root":  {l, func() *recorderHandle { return tree.find("root") }},
		"child": {child, func() *recorderHandle { return tree.find("root/modA") }},
	}

	for where, n := range nodes {
		methods := map[string]func(string, ...any){
			"fatal": n.node.Fatal,
			"error": n.node.Error,
			"warn":  n.node.Warn,
			"info":  n.node.Info,
			"debug": n.node.Debug,
		}
		for name, fn := range methods {
			fn("msg-"+name, "k", 1, "extra", true)

			h := n.handle()
			last := h.calls[len(h.calls)-1]
			if last.method != name {
				t.Fatalf("%s: forwarded to %q, want %q", where, last.method, name)
			}
			if last.msg != "msg-"+name {
				t.Fatalf("%s/%s: message mangled: %q", where, name, last.msg)
			}
			if !reflect.DeepEqual(last.args, []any{"k", 1, "extra", true}) {
				t.Fatalf("%s/%s: args mangled: %v", where, name, last.args)
			}
		}
	}
}

func TestSync_Forwards(t *testing.T) {
	tree, root := newRecorderTree()
	l := logger.New(root)

	if err := l.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if tree.find("root").syncs != 1 {
		t.Fatalf("sync not forwarded to handle")
	}
}
