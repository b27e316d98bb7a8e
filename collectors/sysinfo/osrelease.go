package sysinfo

import (
	"bufio"
	"bytes"
	"os"
	"strings"
)

// readPrettyName returns the PRETTY_NAME value from an os-release file.
func readPrettyName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return parsePrettyName(data), nil
}

// parsePrettyName extracts PRETTY_NAME, stripping optional quotes.
func parsePrettyName(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, ok := strings.CutPrefix(line, "PRETTY_NAME=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			value = value[1 : len(value)-1]
		}
		return value
	}
	return ""
}
