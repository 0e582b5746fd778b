//go:build windows

package app

const pickFolderScript = `Add-Type -AssemblyName System.Windows.Forms
$d = New-Object System.Windows.Forms.FolderBrowserDialog
$d.Description = 'Select Folder'
if ($d.ShowDialog() -eq 'OK') { $d.SelectedPath }`

// platformPickFolder shows the WinForms folder browser through PowerShell.
func platformPickFolder() (string, error) {
	return runDialog("powershell", "-NoProfile", "-STA", "-Command", pickFolderScript)
}
