package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestGo_RecoversAndCleansUp(t *testing.T) {
	var buf bytes.Buffer
	var wg sync.WaitGroup
	var cleaned bool
	exitCode := -1

	origOut, origExit := crashOutput, crashExit
	crashOutput = &buf
	crashExit = func(code int) {
		exitCode = code
		wg.Done()
	}
	defer func() {
		crashOutput, crashExit = origOut, origExit
		SetCrashCleanup(nil)
	}()

	SetCrashCleanup(func() { cleaned = true })

	wg.Add(1)
	Go(func() { panic("boom") })
	wg.Wait()

	if !cleaned {
		t.Error("Expected cleanup hook to run before report")
	}
	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected crash report to contain panic value, got %q", buf.String())
	}
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	called := false
	origExit := crashExit
	crashExit = func(int) { called = true }
	defer func() { crashExit = origExit }()

	HandleCrash(nil)
	if called {
		t.Error("Expected no exit for nil recover value")
	}
}
