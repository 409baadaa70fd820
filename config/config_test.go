package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBasePath(t *testing.T) {
	t.Setenv("PORTFOLIO_BASE_PATH", "")
	assert.Equal(t, "/", GetBasePath())

	t.Setenv("PORTFOLIO_BASE_PATH", "panel")
	assert.Equal(t, "/panel/", GetBasePath())

	t.Setenv("PORTFOLIO_BASE_PATH", "/panel/")
	assert.Equal(t, "/panel/", GetBasePath())
}

func TestGetPortDefault(t *testing.T) {
	t.Setenv("PORTFOLIO_PORT", "")
	assert.Equal(t, 8080, GetPort())

	t.Setenv("PORTFOLIO_PORT", "9000")
	assert.Equal(t, 9000, GetPort())

	t.Setenv("PORTFOLIO_PORT", "not-a-number")
	assert.Equal(t, 8080, GetPort())
}

func TestGetSessionMaxAgeDefault(t *testing.T) {
	t.Setenv("PORTFOLIO_SESSION_MAX_AGE", "")
	assert.Equal(t, 30*24*60*60, GetSessionMaxAge())

	t.Setenv("PORTFOLIO_SESSION_MAX_AGE", "3600")
	assert.Equal(t, 3600, GetSessionMaxAge())
}
