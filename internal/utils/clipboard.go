package utils

import (
	"fmt"

	"golang.design/x/clipboard"
)

var clipboardReady bool

// InitClipboard initializes the system clipboard once. Safe to call again;
// later calls are no-ops.
func InitClipboard() error {
	if clipboardReady {
		return nil
	}
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	clipboardReady = true
	return nil
}

// CopyToClipboard copies the given text to the system clipboard
func CopyToClipboard(text string) error {
	if err := InitClipboard(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
