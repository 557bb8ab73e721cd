package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Info("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
}

func TestInfoWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Info("booked", "schedule_id", 5)

	output := buf.String()
	assert.Contains(t, output, "booked")
	assert.Contains(t, output, "schedule_id")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Error("test error")

	output := buf.String()
	assert.Contains(t, output, "test error")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Infof("hello %s", "world")

	output := buf.String()
	assert.Contains(t, output, "hello world")
}
