package app

import (
	"fmt"

	clipboard "golang.design/x/clipboard"
)

// Maximum clipboard size in bytes (10MB) - helps avoid X11 BadLength errors on Linux
const maxClipboardSize = 10 * 1024 * 1024

// safeClipboardWrite attempts to write data to clipboard with panic recovery.
// Returns an error if the write fails or data is too large.
func safeClipboardWrite(format clipboard.Format, data []byte) (err error) {
	if len(data) > maxClipboardSize {
		return fmt.Errorf("data too large for clipboard (%d bytes, max %d bytes / %.1f MB)",
			len(data), maxClipboardSize, float64(maxClipboardSize)/(1024*1024))
	}

	// Use defer/recover to catch panics from clipboard operations
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard write failed: %v", r)
		}
	}()

	clipboard.Write(format, data)
	return nil
}

// CopyTextToClipboard copies text to the system clipboard
func (a *App) CopyTextToClipboard(text string) error {
	if a == nil {
		return fmt.Errorf("app not initialised")
	}

	// Lazy init clipboard
	a.clipOnce.Do(func() {
		if err := clipboard.Init(); err == nil {
			a.clipOK = true
		} else {
			a.clipOK = false
			if a.ctx != nil {
				a.Log("error", fmt.Sprintf("Clipboard init failed: %v", err))
			}
		}
	})
	if !a.clipOK {
		return fmt.Errorf("clipboard not available")
	}

	return safeClipboardWrite(clipboard.FmtText, []byte(text))
}
