package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFlags(t *testing.T) {
	assert.NoError(t, checkFlags(0, 64, 1))
	assert.NoError(t, checkFlags(5, 5, 8))
	assert.Error(t, checkFlags(0, 64, 0), "no workers would leave the producer blocked")
	assert.Error(t, checkFlags(0, 64, -2))
	assert.Error(t, checkFlags(10, 9, 4))
}
