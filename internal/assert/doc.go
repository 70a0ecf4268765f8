// Package assert
// Author: momentics <momentics@gmail.com>
//
// Debug-time contract checks for the unchecked container paths.
//
// Assertions are on by default and panic with an *api.Error carrying
// ErrCodePrecondition. Building with -tags vecrelease compiles them out, so a
// violated precondition becomes undefined behavior again (usually a runtime
// bounds panic or silently stale data).
package assert
