package bubble

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOutput
	debugOutput = &buf
	t.Cleanup(func() { debugOutput = prev })
	return &buf
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)
	child := NewContainer("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()
	parent.AddChild(child)
}

func TestDebugf(t *testing.T) {
	buf := captureDebug(t)

	debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("release mode printed %q", buf.String())
	}

	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	debugf("shown %d", 2)
	if got := buf.String(); got != "[bubble] shown 2\n" {
		t.Errorf("output = %q", got)
	}
}

func TestDebugLogsPreemption(t *testing.T) {
	buf := captureDebug(t)
	s, b := newTestBubble(t)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	b.Show(OrientationUp, Vec2{500, 300}, "one", ShowOptions{})
	b.ShowMessageOverlay("two", false)

	if !strings.Contains(buf.String(), "Message preempts Text (Showing)") {
		t.Errorf("output = %q, want a preemption line", buf.String())
	}
}
