package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// OsExitIfErr prints error msg and exit
func OsExitIfErr(err error, format string, a ...interface{}) {
	if err != nil {
		fmt.Printf(format, a...)
		fmt.Printf("--- error: %v", err.Error())
		fmt.Println()
		os.Exit(1)
	}
}

// ParseLogLevel parses a numeric logrus level such as the LOGLEVEL environment
// variable holds.
func ParseLogLevel(levelStr string) (logrus.Level, error) {
	level, err := strconv.ParseUint(levelStr, 10, 32)
	if err != nil {
		return logrus.InfoLevel, err
	}

	if level > uint64(logrus.TraceLevel) {
		return logrus.InfoLevel, fmt.Errorf("log level %v out of range", level)
	}

	return logrus.Level(level), nil
}
