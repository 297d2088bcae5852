package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredMigrations(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms, "embedded migrations should be registered at init")

	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].Version, ms[i].Version, "migrations should be sorted by version")
	}

	init := GetMigrationByVersion(1)
	require.NotNil(t, init)
	assert.Equal(t, "init", init.Name)
	assert.NotEmpty(t, init.UpScript)
	assert.NotEmpty(t, init.DownScript)
}
