package isometric

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	parent := NewContainer("parent")
	child := NewSprite("child", nil)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()
	child := NewSprite("child", nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestReleaseMode_DisposedNodeNoOp(t *testing.T) {
	SetDebugMode(false)

	root := NewContainer("root")
	child := NewSprite("child", nil)
	child.Dispose()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("release mode should not panic on disposed node, got: %v", r)
		}
	}()
	root.AddChild(child)
}

func TestLoggerSilentByDefault(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLoggerAndRestore(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)
	defer SetLogger(nil)

	if Logger() != l {
		t.Fatal("Logger should return the installed logger")
	}
	Logger().Debug("hello", "k", 1)
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q, want it to contain hello", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
