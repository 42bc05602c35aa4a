package env_test

import (
	"testing"

	assertions "github.com/stretchr/testify/assert"

	"github.com/shaelmaar/conlog/internal/env"
)

func TestGetString(t *testing.T) {
	assert := assertions.New(t)

	assert.Equal("fallback", env.GetString("CONLOG_TEST_UNSET", "fallback"))

	t.Setenv("CONLOG_TEST_LEVEL", "WARN")
	assert.Equal("WARN", env.GetString("CONLOG_TEST_LEVEL", "fallback"))
}

func TestGetInt(t *testing.T) {
	assert := assertions.New(t)

	assert.Equal(4, env.GetInt("CONLOG_TEST_UNSET", 4))

	t.Setenv("CONLOG_TEST_LIMIT", "8")
	assert.Equal(8, env.GetInt("CONLOG_TEST_LIMIT", 4))

	t.Setenv("CONLOG_TEST_LIMIT", "not-a-number")
	assert.Equal(4, env.GetInt("CONLOG_TEST_LIMIT", 4))
}
