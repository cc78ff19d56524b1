package util

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("5")
	assert.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	level, err = ParseLogLevel("debug")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, level)

	_, err = ParseLogLevel("42")
	assert.Error(t, err)
}
