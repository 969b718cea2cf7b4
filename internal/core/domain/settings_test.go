package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()
	assert.Equal(t, "0.0.0.0:12000", s.Server.Address())
	assert.Equal(t, SessionBackendMemory, s.Session.Backend)
	assert.Equal(t, 30, s.Session.TTLMinutes)
	assert.Equal(t, ReceiptBackendMemory, s.Receipts.Backend)
	assert.True(t, IsValidLogLevel(s.Log.Level))
	assert.True(t, IsValidLogFormat(s.Log.Format))
}

func TestSessionBackend_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		backend  SessionBackend
		expected bool
	}{
		{"memory is valid", SessionBackendMemory, true},
		{"redis is valid", SessionBackendRedis, true},
		{"empty is invalid", SessionBackend(""), false},
		{"unknown is invalid", SessionBackend("memcached"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.backend.IsValid())
		})
	}
}

func TestReceiptBackend_Description(t *testing.T) {
	assert.Equal(t, "SQLite database", ReceiptBackendSQLite.Description())
	assert.Equal(t, unknownDescription, ReceiptBackend("csv").Description())
	assert.Len(t, AllReceiptBackends(), 2)
	assert.Len(t, AllSessionBackends(), 2)
}
