package pkgmgr

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"gitlab.com/tinyland/lab/hello/collectors"
)

// Parse reduces one command's captured output to a Count according to the
// command's parser kind. It never looks at the exit code.
func Parse(spec CommandSpec, raw collectors.Output) (Count, error) {
	if !utf8.Valid(raw.Stdout) {
		return 0, &ParseError{Command: spec.String(), Reason: "output is not valid UTF-8"}
	}

	lines := splitLines(string(raw.Stdout))

	switch spec.Parser {
	case ParseLines:
		return countLines(lines, spec.SkipLines), nil
	case ParseSentinel:
		return parseSentinel(lines, spec.Sentinel), nil
	default:
		return 0, &ParseError{Command: spec.String(), Reason: "unknown parser kind " + strconv.Itoa(int(spec.Parser))}
	}
}

// splitLines splits s on newlines, dropping the empty element left by a
// trailing newline and any carriage returns.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func countLines(lines []string, skip int) Count {
	if skip >= len(lines) {
		return 0
	}
	var n Count
	for _, l := range lines[skip:] {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}

func parseSentinel(lines []string, sentinel string) Count {
	nonEmpty := lines[:0:0]
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	if len(nonEmpty) == 0 {
		return 0
	}

	last := nonEmpty[len(nonEmpty)-1]
	if sentinel != "" && strings.Contains(strings.ToLower(last), strings.ToLower(sentinel)) {
		return 0
	}

	if len(nonEmpty) == 1 {
		if n, err := strconv.Atoi(last); err == nil && n >= 0 {
			return Count(n)
		}
		return 1
	}
	return Count(len(nonEmpty))
}
