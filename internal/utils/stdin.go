package utils

import (
	"io"
	"os"
	"strings"
)

// ReadPipedInput returns the trimmed contents of r. When r is a terminal it
// returns "" instead of blocking, and an empty regular file reads as "".
func ReadPipedInput(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return "", err
		}
		if stat.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
		if stat.Mode().IsRegular() && stat.Size() == 0 {
			return "", nil
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// FirstLine returns the first non-blank line of text, trimmed
func FirstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
