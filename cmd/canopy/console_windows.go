//go:build windows

package main

import "syscall"

// manageConsole detaches from the console window unless debugging, so a
// build launched from Explorer does not keep a console open.
func manageConsole(debug bool) {
	if debug {
		return
	}
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	freeConsole := kernel32.NewProc("FreeConsole")
	freeConsole.Call()
}
