//go:build !linux && !darwin && !windows

package app

import "errors"

func platformPickFolder() (string, error) {
	return "", errors.New("folder dialog not supported on this platform")
}
