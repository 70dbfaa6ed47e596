//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// readPasswordNoEcho turns terminal echo off for one line of input and
// restores the previous mode afterwards.
func readPasswordNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errNoTerminal
	}

	fd := int(stdin.Fd())
	saved, err := unix.IoctlGetTermios(fd, termiosGet)
	if errors.Is(err, unix.ENOTTY) {
		return nil, errNoTerminal
	}
	if err != nil {
		return nil, err
	}

	silent := *saved
	silent.Lflag &^= unix.ECHO
	silent.Lflag |= unix.ICANON | unix.ISIG
	if err := unix.IoctlSetTermios(fd, termiosSet, &silent); err != nil {
		return nil, err
	}
	defer unix.IoctlSetTermios(fd, termiosSet, saved)

	return readSecretLine(stdin)
}
