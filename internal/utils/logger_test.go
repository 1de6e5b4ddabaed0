package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	previous := logrus.GetLevel()
	defer logrus.SetLevel(previous)

	SetupLogger("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	SetupLogger("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	// Unknown levels fall back to info instead of failing.
	SetupLogger("chatty")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
