//go:build debug

package vista

// debugEnabled gates precondition checks. With the debug build tag a failed
// precondition panics with a typed error; without it the guarded branch is
// compiled out and violating the precondition is undefined.
const debugEnabled = true
