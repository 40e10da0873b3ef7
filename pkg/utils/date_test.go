package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"Meio do ano", time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), "2025-W11"},
		{"Semana com um dígito ganha zero à esquerda", time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), "2025-W02"},
		{"Virada de ano pertence à semana ISO do ano anterior", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W53"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekKey(tt.date))
		})
	}
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, "Europe/Rome", LoadLocation("Europe/Rome").String())

	// Fuso inválido cai para UTC
	assert.Equal(t, time.UTC, LoadLocation("Fuso/Inexistente"))
	assert.Equal(t, time.UTC, LoadLocation(""))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, 8)

	other, err := GenerateID()
	assert.NoError(t, err)
	assert.NotEqual(t, id, other)
}
