package app

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/justyntemme/canopy/internal/debug"
)

// FolderPicker asks the user for a directory. ok is false when the user
// cancelled or no dialog could be shown.
type FolderPicker interface {
	PickFolder() (path string, ok bool)
}

// FolderPickerFunc adapts a function to FolderPicker.
type FolderPickerFunc func() (string, bool)

func (f FolderPickerFunc) PickFolder() (string, bool) { return f() }

// NativePicker shows the platform's folder dialog through an external tool.
type NativePicker struct{}

func (NativePicker) PickFolder() (string, bool) {
	out, err := platformPickFolder()
	if err != nil {
		// Dialog tools exit non-zero on cancel; nothing to distinguish here
		debug.Log(debug.APP, "PickFolder: %v", err)
		return "", false
	}
	return cleanPickedPath(out)
}

// cleanPickedPath trims dialog tool output down to a directory path.
func cleanPickedPath(out string) (string, bool) {
	path := strings.TrimSpace(out)
	if path == "" {
		return "", false
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, `/\`)
		switch {
		case path == "":
			path = "/"
		case len(path) == 2 && path[1] == ':':
			// A bare drive means that drive's working directory, not its root
			path += `\`
		}
	}
	if !isAbsolutePath(path) {
		return "", false
	}
	return filepath.Clean(path), true
}

// isAbsolutePath checks if a path is absolute, handling both Unix and Windows paths
func isAbsolutePath(path string) bool {
	if len(path) == 0 {
		return false
	}
	if path[0] == '/' {
		return true
	}
	// Drive letter paths: C:\, D:\, C:/
	if len(path) >= 2 && isLetter(path[0]) && path[1] == ':' {
		return true
	}
	// UNC paths: \\server\share
	return len(path) >= 2 && path[0] == '\\' && path[1] == '\\'
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// runDialog runs a dialog command and returns its standard output.
func runDialog(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
