package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var errNoTerminal = errors.New("stdin is not a terminal, run without --prompt to get a temporary password")

// readSecretLine reads one line and drops the trailing newline. A final line
// without a newline is accepted.
func readSecretLine(reader io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
