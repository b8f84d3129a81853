package utils

import (
	"fmt"
	"time"
)

// YearMonth formata um (ano, mês) no formato yyyy-mm usado pelas
// integrações externas
func YearMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// CurrentYearMonth retorna a competência atual no formato yyyy-mm
func CurrentYearMonth() string {
	now := time.Now()
	return YearMonth(now.Year(), int(now.Month()))
}

// MonthRange retorna o primeiro e o último dia de um (ano, mês)
func MonthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
