package errors

import (
	"strings"
	"testing"
)

func TestRecoverConvertsPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "TestOperation")
		panic("boom")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "TestOperation" {
		t.Errorf("Operation = %q, want %q", panicErr.Operation, "TestOperation")
	}
	if !strings.Contains(panicErr.StackTrace, "recovery_test.go") {
		t.Error("stack trace should reference the panicking file")
	}
}

func TestRecoverWrapsExistingError(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "TestOperation")
		err = New("original failure")
		panic("boom")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "original failure") {
		t.Errorf("wrapped error should keep the original message, got: %v", err)
	}
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("divide", func() error {
		var xs []int
		_ = xs[3] // out of range
		return nil
	})
	if err == nil {
		t.Fatal("expected error from panicking function")
	}

	if err := SafeExecute("noop", func() error { return nil }); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
