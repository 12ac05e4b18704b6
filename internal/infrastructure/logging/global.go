package logging

import "sync"

var (
	globalMu sync.Mutex
	global   *Logger
)

// Global returns the process-wide logger, constructing it lazily from
// current environment configuration on first use. Subsequent calls return
// the same instance; configuration changes after construction have no
// effect until ResetGlobal.
func Global() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		logger, err := New(LoadConfig())
		if err != nil {
			logger = NewDefault()
		}
		global = logger
	}
	return global
}

// SetGlobal replaces the process-wide logger. Intended for the composition
// root, which may want the global accessor to hand out its fully-configured
// instance.
func SetGlobal(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = l
}

// ResetGlobal drops the cached logger so the next Global call rebuilds from
// current configuration. This exists for test isolation; resetting while
// records are in flight risks losing buffered output of the old instance.
func ResetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = nil
}
