package fn

// Currying converts a function of N positional arguments into a nest of N
// single-argument functions; uncurrying inverts it. Arity is fixed by the
// function type, one generic pair per arity, so supplying all N arguments
// one at a time reproduces the single N-ary call exactly.

// Curry0 is the identity on 0-arity functions: there is no argument to
// bind, so currying is a no-op and the function itself — not the result of
// invoking it — is returned.
func Curry0[R any](f func() R) func() R {
	return f
}

// Uncurry0 is the identity on 0-arity functions, mirroring Curry0.
func Uncurry0[R any](f func() R) func() R {
	return f
}

// Curry2 converts a two-argument function into its curried form.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Uncurry2 converts a curried two-argument function back into a function
// accepting both arguments at once.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Curry3 converts a three-argument function into its curried form, binding
// one argument per step.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Curry2(func(b B, c C) R {
			return f(a, b, c)
		})
	}
}

// Uncurry3 converts a curried three-argument function back into a function
// accepting all three arguments at once.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b)(c)
	}
}

// Curry4 converts a four-argument function into its curried form.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(func(b B, c C, d D) R {
			return f(a, b, c, d)
		})
	}
}

// Uncurry4 converts a curried four-argument function back into a function
// accepting all four arguments at once.
func Uncurry4[A, B, C, D, R any](f func(A) func(B) func(C) func(D) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return f(a)(b)(c)(d)
	}
}
