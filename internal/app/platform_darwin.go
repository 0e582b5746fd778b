//go:build darwin

package app

// platformPickFolder asks Finder for a folder through AppleScript.
func platformPickFolder() (string, error) {
	return runDialog("osascript", "-e", `POSIX path of (choose folder with prompt "Select Folder")`)
}
