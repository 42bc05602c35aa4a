package conlog_test

import (
	"testing"

	assertions "github.com/stretchr/testify/assert"

	"github.com/shaelmaar/conlog"
)

type caller struct {
	log *conlog.Scope
}

func (c *caller) run() {
	c.log.Error("boom")
}

func emit(s *conlog.Scope) {
	s.Info("hi")
}

func TestCallerTagMethod(t *testing.T) {
	assert := assertions.New(t)
	l, b := newBufLogger(t, "DEBUG")

	c := &caller{log: l.Scope("t")}
	c.run()

	assert.Regexp(`\[caller\.run\(\)\]:\d+`, b.String())
}

func TestCallerTagFunction(t *testing.T) {
	assert := assertions.New(t)
	l, b := newBufLogger(t, "DEBUG")

	emit(l.Scope("t"))

	assert.Regexp(`\.emit\(\)\]:\d+`, b.String())
}

func TestCallerTagSkipsLoggerFrames(t *testing.T) {
	assert := assertions.New(t)
	l, b := newBufLogger(t, "DEBUG")

	// Errorf goes through an extra internal frame; the tag must still point
	// at caller code.
	l.Scope("t").Errorf("v=%d", 1)

	assert.Regexp(`\.TestCallerTagSkipsLoggerFrames\(\)\]:\d+`, b.String())
	assert.NotContains(b.String(), "Scope.Errorf")
}
