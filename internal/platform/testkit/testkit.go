// Package testkit holds small helpers shared by launchdeck tests
package testkit

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// MustPanic fails t unless fn panics; when contains is given the panic text must include each part
func MustPanic(t testing.TB, fn func(), contains ...string) {
	t.Helper()
	msg, ok := catch(fn)
	if !ok {
		t.Fatalf("expected panic, got none")
	}
	for _, c := range contains {
		if !strings.Contains(msg, c) {
			t.Fatalf("panic %q does not mention %q", msg, c)
		}
	}
}

func catch(fn func()) (msg string, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			msg, panicked = fmt.Sprint(r), true
		}
	}()
	fn()
	return "", false
}

var serial sync.Mutex

// Swap replaces *target for the rest of the test; callers mutating package vars should also call Serial
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	orig := *target
	*target = v
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock until t finishes
func Serial(t testing.TB) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
