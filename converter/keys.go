package converter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// maxLineSize bounds a single line of the key list.
const maxLineSize = 1024 * 1024

// ParseLine extracts the key token from a raw line of the key list.
//
// Lines whose first character is a bracket belong to the array structure and
// are skipped (ok is false), whatever follows the bracket. Any other line is
// kept, including empty ones: trace is the line with every quote and comma
// removed, token is trace trimmed of surrounding whitespace.
func ParseLine(raw string) (token, trace string, ok bool) {
	if len(raw) > 0 && (raw[0] == '[' || raw[0] == ']') {
		return "", "", false
	}

	trace = strings.NewReplacer(`"`, "", ",", "").Replace(raw)
	return strings.TrimSpace(trace), trace, true
}

// ReadKeys reads the key tokens of r in order. The trace copy of every kept
// line is printed to trace.
func ReadKeys(r io.Reader, trace io.Writer) (keys []string, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	keys = []string{}
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, skipped, errors.Errorf("line %v is not valid UTF-8", lineNo)
		}

		token, traced, ok := ParseLine(line)
		if !ok {
			skipped++
			continue
		}

		if _, err := fmt.Fprintln(trace, traced); err != nil {
			return nil, skipped, errors.Wrap(err, "failed to print trace")
		}

		keys = append(keys, token)
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, errors.Wrap(err, "failed to scan key list")
	}

	return keys, skipped, nil
}
