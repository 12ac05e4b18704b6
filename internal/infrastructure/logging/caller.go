package logging

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerDepth is how many frames sit below resolveCaller before application
// code can possibly appear: runtime.Callers itself and resolveCaller. The
// marker scan below corrects for any additional wrapper frames, so this
// constant only trims work, it does not pin the answer.
const callerDepth = 2

// maxCallerFrames bounds the stack walk; anything deeper than this without
// hitting application code means the resolver is being called from somewhere
// it was never meant to run.
const maxCallerFrames = 24

// internalPathMarkers identify frames belonging to this package or to the
// logging libraries it delegates to. Frames matching any marker are skipped
// when resolving the application caller.
var internalPathMarkers = []string{
	"/infrastructure/logging/",
	"go.uber.org/zap",
}

// resolveCaller walks the current stack and returns the nearest application
// frame as "file.go:line". The second return is false when no qualifying
// frame exists; callers must treat that as an expected outcome, not an error.
func resolveCaller() (string, bool) {
	pcs := make([]uintptr, maxCallerFrames)
	n := runtime.Callers(callerDepth, pcs)
	if n == 0 {
		return "", false
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !isInternalFrame(frame.File) {
			return filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line), true
		}
		if !more {
			return "", false
		}
	}
}

func isInternalFrame(file string) bool {
	for _, marker := range internalPathMarkers {
		if strings.Contains(file, marker) {
			return true
		}
	}
	return false
}
