package converter

import (
	"io"
	"os"

	"github.com/achain/deploy-tool/console"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultKeysFile is the key list read when no path is given.
	DefaultKeysFile = "./wif_keys.json"
	// DefaultOutputFile is the console script written when no path is given.
	DefaultOutputFile = "./import_wif_keys.json"
)

// Convert reads the key list from r and writes the console script to w.
func Convert(r io.Reader, w io.Writer, trace io.Writer) (Summary, error) {
	keys, skipped, err := ReadKeys(r, trace)
	if err != nil {
		return Summary{}, err
	}

	script := console.NewScript(keys)
	if _, err := script.WriteTo(w); err != nil {
		return Summary{}, err
	}

	return Summary{
		Keys:    script.ImportCount(),
		Skipped: skipped,
	}, nil
}

// ConvertFile converts the key list at src into a console script at dst.
// dst is truncated first, so repeated runs never accumulate output.
func ConvertFile(src, dst string, trace io.Writer) (summary Summary, err error) {
	in, err := os.Open(src)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "failed to open key list %v", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "failed to create script %v", dst)
	}
	defer func() {
		if e := out.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "failed to close script %v", dst)
		}
	}()

	summary, err = Convert(in, out, trace)
	if err != nil {
		return Summary{}, errors.WithMessagef(err, "failed to convert %v", src)
	}

	summary.Source = src
	summary.Destination = dst

	logrus.WithFields(logrus.Fields{
		"source":      src,
		"destination": dst,
		"keys":        summary.Keys,
		"skipped":     summary.Skipped,
	}).Debug("key list converted")

	return summary, nil
}
