package diag

import "os"

func stderrFd() uintptr {
	return os.Stderr.Fd()
}

// SetColorOverride forces (or disables) caret colorization regardless of
// terminal detection. Used by driver tests, where stderr is always a pipe.
func SetColorOverride(on bool) {
	colorizeOverride = &on
}

// ClearColorOverride restores terminal-detection-based colorization.
func ClearColorOverride() {
	colorizeOverride = nil
}
