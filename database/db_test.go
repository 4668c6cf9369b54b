package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenDialector(t *testing.T) {
	assert.Equal(t, "sqlite", openDialector("").Name())
	assert.Equal(t, "sqlite", openDialector("sqlite://dev.db").Name())
	assert.Equal(t, "postgres", openDialector("postgresql://user:pw@host:5432/db").Name())
}
