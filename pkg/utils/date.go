package utils

import (
	"fmt"
	"time"
)

// WeekKey retorna o identificador da semana ISO no formato "2024-W05".
// É a chave dos leaderboards semanais de métricas
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// LoadLocation resolve o fuso configurado, caindo para UTC quando inválido
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
