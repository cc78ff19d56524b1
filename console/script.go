package console

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Script is an ordered list of console directives.
type Script []Command

// NewScript wraps keys with the fixed header and trailer. Keys keep their order.
func NewScript(keys []string) Script {
	imports := lo.Map(keys, func(key string, _ int) Command {
		return ImportKey(key)
	})

	script := make(Script, 0, len(imports)+3)
	script = append(script, Header()...)
	script = append(script, imports...)
	script = append(script, Trailer()...)

	return script
}

// ImportCount returns the number of import_key directives in the script.
func (s Script) ImportCount() int {
	return len(s) - len(Header()) - len(Trailer())
}

// WriteTo writes one directive per line.
func (s Script) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var total int64
	for i, cmd := range s {
		n, err := bw.WriteString(string(cmd) + "\n")
		total += int64(n)
		if err != nil {
			return total, errors.Wrapf(err, "failed to write command %v", i)
		}
	}

	if err := bw.Flush(); err != nil {
		return total, errors.Wrap(err, "failed to flush script")
	}

	return total, nil
}
