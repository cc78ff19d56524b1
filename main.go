package main

import (
	"fmt"
	"os"

	"github.com/achain/deploy-tool/converter"
	"github.com/achain/deploy-tool/util"
	"github.com/sirupsen/logrus"
)

var rootCmd = converter.Command()

func init() {
	setLogLevel()
}

func setLogLevel() {
	levelStr, ok := os.LookupEnv("LOGLEVEL")
	if !ok {
		return
	}

	level, err := util.ParseLogLevel(levelStr)
	if err != nil {
		logrus.WithError(err).WithField("LOGLEVEL", levelStr).Debug("ignore invalid log level")
		return
	}
	logrus.SetLevel(level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
