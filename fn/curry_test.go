package fn_test

import (
	"lazychain/fn"
	"testing"
)

func TestCurry2RoundTrip(t *testing.T) {
	sub := func(a, b int) int { return a - b }

	curried := fn.Curry2(sub)
	if got := curried(10)(3); got != 7 {
		t.Errorf("Curry2(sub)(10)(3) = %d, want 7", got)
	}

	// Uncurrying must restore the original calling convention exactly.
	uncurried := fn.Uncurry2(curried)
	for a := -2; a <= 2; a++ {
		for b := -2; b <= 2; b++ {
			if uncurried(a, b) != sub(a, b) {
				t.Fatalf("Uncurry2(Curry2(sub))(%d, %d) != sub(%d, %d)", a, b, a, b)
			}
		}
	}
}

func TestCurry3(t *testing.T) {
	join := func(a, b, c string) string { return a + b + c }

	curried := fn.Curry3(join)
	if got := curried("x")("y")("z"); got != "xyz" {
		t.Errorf("Curry3(join) = %q, want %q", got, "xyz")
	}

	if got := fn.Uncurry3(curried)("a", "b", "c"); got != "abc" {
		t.Errorf("Uncurry3(Curry3(join)) = %q, want %q", got, "abc")
	}
}

func TestCurry4(t *testing.T) {
	sum := func(a, b, c, d int) int { return a + b + c + d }

	curried := fn.Curry4(sum)
	if got := curried(1)(2)(3)(4); got != 10 {
		t.Errorf("Curry4(sum) = %d, want 10", got)
	}

	if got := fn.Uncurry4(curried)(1, 2, 3, 4); got != 10 {
		t.Errorf("Uncurry4(Curry4(sum)) = %d, want 10", got)
	}
}

func TestCurry0IsIdentity(t *testing.T) {
	calls := 0
	f := func() int {
		calls++
		return 42
	}

	// Currying and uncurrying a 0-arity function must return the function
	// itself, not the result of invoking it.
	g := fn.Curry0(f)
	h := fn.Uncurry0(f)
	if calls != 0 {
		t.Fatalf("Curry0/Uncurry0 invoked the function: %d calls", calls)
	}

	if g() != 42 || h() != 42 {
		t.Error("Curry0/Uncurry0 changed the function's behavior")
	}
	if calls != 2 {
		t.Errorf("Expected 2 calls after invoking both, got %d", calls)
	}
}

func TestMixedArgumentTypes(t *testing.T) {
	repeat := func(s string, n int) string {
		out := ""
		for i := 0; i < n; i++ {
			out += s
		}
		return out
	}

	if got := fn.Curry2(repeat)("ab")(3); got != "ababab" {
		t.Errorf("Curry2(repeat) = %q, want %q", got, "ababab")
	}
}
