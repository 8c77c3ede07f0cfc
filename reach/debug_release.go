//go:build !reachdebug

package reach

// debugAssert is a no-op outside of "reachdebug" builds; see debug.go.
func debugAssert(cond bool, format string, args ...interface{}) {}
