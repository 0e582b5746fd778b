//go:build linux

package app

import (
	"errors"
	"os/exec"
)

var errNoDialogTool = errors.New("no folder dialog tool found (install zenity or kdialog)")

// platformPickFolder shows a folder dialog using whichever desktop tool is
// installed. GNOME and most others ship zenity, KDE Plasma ships kdialog.
func platformPickFolder() (string, error) {
	if _, err := exec.LookPath("zenity"); err == nil {
		return runDialog("zenity", "--file-selection", "--directory", "--title=Select Folder")
	}
	if _, err := exec.LookPath("kdialog"); err == nil {
		return runDialog("kdialog", "--getexistingdirectory", ".", "--title", "Select Folder")
	}
	return "", errNoDialogTool
}
