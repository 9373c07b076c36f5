package errors

import (
	"fmt"
	"testing"
)

func TestFluxError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeIllegalReentrancy, "dispatch in progress")
	if err.Code != ErrCodeIllegalReentrancy {
		t.Errorf("expected code %s, got %s", ErrCodeIllegalReentrancy, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeReducerShape, "probe failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeReducerShape) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeInvalidAction) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("operation", "Subscribe").WithDetail("attempt", 2)
	if detailed.Details["operation"] != "Subscribe" {
		t.Error("WithDetail should add details")
	}

	// Test Is through a plain wrapping error
	outer := fmt.Errorf("store init: %w", wrapped)
	if !Is(outer, ErrCodeReducerShape) {
		t.Error("Is should unwrap non-flux errors")
	}
	if GetCode(outer) != ErrCodeReducerShape {
		t.Error("GetCode should unwrap non-flux errors")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test IllegalReentrancy
	err := IllegalReentrancy("GetState")
	if err.Code != ErrCodeIllegalReentrancy {
		t.Errorf("expected code %s, got %s", ErrCodeIllegalReentrancy, err.Code)
	}
	if err.Details["operation"] != "GetState" {
		t.Error("IllegalReentrancy should include operation detail")
	}

	// Test ShapeError
	err = ShapeError("todos", "@@flux/INIT")
	if err.Code != ErrCodeReducerShape {
		t.Errorf("expected code %s, got %s", ErrCodeReducerShape, err.Code)
	}
	if err.Details["key"] != "todos" {
		t.Error("ShapeError should include key detail")
	}

	// Test UndefinedSubstate
	err = UndefinedSubstate("counter", "increment")
	if err.Code != ErrCodeUndefinedSubstate {
		t.Errorf("expected code %s, got %s", ErrCodeUndefinedSubstate, err.Code)
	}
	if err.Details["actionType"] != "increment" {
		t.Error("UndefinedSubstate should include actionType detail")
	}

	// Test PrematureDispatch
	err = PrematureDispatch()
	if err.Code != ErrCodePrematureDispatch {
		t.Errorf("expected code %s, got %s", ErrCodePrematureDispatch, err.Code)
	}

	// Test InvalidArgument
	err = InvalidArgument("listener", "must not be nil")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidArgument, err.Code)
	}
	if err.Details["argument"] != "listener" {
		t.Error("InvalidArgument should include argument detail")
	}
}
