// Package debug is a one-way diagnostic text log. On the board it ends up
// on the USB serial console; nothing in the firmware reads it back.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	out     io.Writer = os.Stdout
	mu      sync.Mutex
	enabled = true
	boot    = time.Now()
)

// SetOutput redirects the log, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Disable silences the log entirely.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// Enable turns the log back on.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Log writes one category-tagged line, stamped with milliseconds since boot.
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || out == nil {
		return
	}

	ms := time.Since(boot).Milliseconds()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%8d] %-8s %s\n", ms, category, msg)
}
