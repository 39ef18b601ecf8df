package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_VersionCommand(t *testing.T) {
	assert.Equal(t, 0, run([]string{"version"}))
}

func TestRun_Help(t *testing.T) {
	assert.Equal(t, 0, run([]string{"--help"}))
}

func TestRun_UnknownFlag(t *testing.T) {
	assert.Equal(t, 1, run([]string{"--bogus"}))
}
