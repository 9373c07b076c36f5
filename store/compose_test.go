package store

import (
	"reflect"
	"testing"
)

func TestComposeRightToLeft(t *testing.T) {
	f := func(s string) string { return s + "f" }
	g := func(s string) string { return s + "g" }
	h := func(s string) string { return s + "h" }

	got := Compose(f, g, h)("x")
	want := f(g(h("x")))
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got != "xhgf" {
		t.Errorf("expected rightmost function to run first, got %q", got)
	}
}

func TestComposeZeroIsIdentity(t *testing.T) {
	id := Compose[int]()
	if id(42) != 42 {
		t.Errorf("expected identity, got %d", id(42))
	}
}

func TestComposeSingleIsSameFunction(t *testing.T) {
	f := func(n int) int { return n + 1 }
	composed := Compose(f)
	if reflect.ValueOf(composed).Pointer() != reflect.ValueOf(f).Pointer() {
		t.Error("composing a single function should return it unchanged")
	}
}
