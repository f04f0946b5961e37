package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactsContactFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromCore(core)

	log.Info("stakeholder updated",
		"stakeholder_id", 7,
		"email", "owner@example.com",
		"phoneNumber", "555-0100",
		"name", "Jane Doe",
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 7, fields["stakeholder_id"])
	assert.Equal(t, "[REDACTED]", fields["email"])
	assert.Equal(t, "[REDACTED]", fields["phoneNumber"])
	assert.Equal(t, "Jane Doe", fields["name"])
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromCore(core).With("service", "ProjectService", "database_url", "postgres://u:p@h/db")

	log.Warn("ignored packages", "count", 2)

	entries := logs.FilterMessage("ignored packages").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "ProjectService", fields["service"])
	assert.Equal(t, "[REDACTED]", fields["database_url"])
	assert.EqualValues(t, 2, fields["count"])
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		log, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, log.SugaredLogger)
	}
}

func TestOddKeyValues(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}
