package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalRedirectTarget(t *testing.T) {
	assert.Equal(t, "/projects", localRedirectTarget("/projects", "/"))
	assert.Equal(t, "/", localRedirectTarget("", "/"))
	assert.Equal(t, "/", localRedirectTarget("https://evil.example.com/", "/"))
	assert.Equal(t, "/", localRedirectTarget("//evil.example.com", "/"))
}
