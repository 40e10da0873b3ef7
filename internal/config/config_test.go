package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeywordList(t *testing.T) {
	tests := []struct {
		name     string
		keywords string
		expected []string
	}{
		{"Lista simples", "tv;cuffie;ssd", []string{"tv", "cuffie", "ssd"}},
		{"Espaços e entradas vazias são descartados", " tv ; ; monitor gaming ;", []string{"tv", "monitor gaming"}},
		{"String vazia", "", []string{}},
		{"Só separadores", ";;;", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Collector{Keywords: tt.keywords}
			assert.Equal(t, tt.expected, c.KeywordList())
		})
	}
}

func TestKeepaTTL(t *testing.T) {
	assert.Equal(t, 12*time.Hour, Keepa{TTLHours: 12}.TTL())
	assert.Equal(t, time.Duration(0), Keepa{}.TTL())
}

func TestDedupWindow(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, Selection{DedupDays: 7}.DedupWindow())
}
