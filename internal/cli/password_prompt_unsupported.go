//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import "os"

func readPasswordNoEcho(*os.File) ([]byte, error) {
	return nil, errNoTerminal
}
