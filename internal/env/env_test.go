package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	t.Setenv("TEST_ADDR", ":9090")

	assert.Equal(t, ":9090", GetString("TEST_ADDR", ":8080"))
	assert.Equal(t, ":8080", GetString("TEST_ADDR_MISSING", ":8080"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("TEST_CONNS", "25")
	t.Setenv("TEST_CONNS_BAD", "not-a-number")

	assert.Equal(t, 25, GetInt("TEST_CONNS", 10))
	assert.Equal(t, 10, GetInt("TEST_CONNS_BAD", 10))
	assert.Equal(t, 10, GetInt("TEST_CONNS_MISSING", 10))
}
