//go:build reachdebug

package reach

import "fmt"

// debugAssert panics with a formatted message when cond is false. It only
// exists in builds tagged "reachdebug", matching the spec's "debug-mode
// assertions" policy (§7): release builds pay no assertion cost and have
// undefined behavior if the asserted precondition is violated, rather than
// the defined-but-slow behavior a production assertion would give.
func debugAssert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("reach: assertion failed: "+format, args...))
	}
}
