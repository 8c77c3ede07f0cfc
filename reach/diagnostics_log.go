package reach

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogDiagnostics implements Diagnostics by writing a human-readable line
// per Diagnostic to the configured writer, in the teacher's LogEmitter
// idiom (graph/emit/log.go): one line per event, key=value style, safe for
// concurrent use via an internal mutex since Diagnostics implementations
// have no other concurrency guarantee from this package.
type LogDiagnostics struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewLogDiagnostics returns a LogDiagnostics writing to writer. A nil
// writer defaults to os.Stderr, since diagnostics are warnings, not
// primary program output.
func NewLogDiagnostics(writer io.Writer) *LogDiagnostics {
	if writer == nil {
		writer = os.Stderr
	}
	return &LogDiagnostics{writer: writer}
}

// Emit writes d as a single line: "[reach] code=... msg=... locations=...".
func (l *LogDiagnostics) Emit(d Diagnostic) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "[reach] code=%s msg=%q locations=%v\n", d.Code, d.Message, d.Locations)
}
