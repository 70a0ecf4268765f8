// File: internal/assert/assert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package assert

import "github.com/momentics/hioload-vec/api"

// That panics with a precondition error when cond is false and assertions are enabled.
func That(cond bool, msg string, kv ...any) {
	if !Enabled || cond {
		return
	}
	panic(violation(msg, kv...))
}

// InRange checks lo <= i < hi.
func InRange(i, lo, hi int, msg string) {
	if !Enabled || (i >= lo && i < hi) {
		return
	}
	panic(violation(msg, "index", i, "lo", lo, "hi", hi))
}

func violation(msg string, kv ...any) *api.Error {
	err := api.NewError(api.ErrCodePrecondition, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		err.WithContext(key, kv[i+1])
	}
	return err
}
