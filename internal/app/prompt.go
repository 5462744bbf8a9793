package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is swappable in tests, where there is no terminal.
//
//nolint:gochecknoglobals // Test seam for terminal input.
var readPassword = term.ReadPassword

// promptEmail reads an e-mail address from the reader.
func promptEmail(reader io.Reader) (string, error) {
	fmt.Fprint(os.Stderr, "Email: ")

	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read email: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// promptPassword reads a password from the terminal without echoing it.
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")

	password, err := readPassword(int(os.Stdin.Fd()))

	// The user's Enter is swallowed by the raw read.
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}
