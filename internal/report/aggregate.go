// Package report reduz coleções já carregadas em totais por período, taxas e médias.
package report

import (
	"math"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// MonthTotal é o total de um mês do ano (1..12).
type MonthTotal struct {
	Month int   `json:"month"`
	Sum   int64 `json:"sum"`
	Count int   `json:"count"`
}

// Series sempre tem 12 posições, uma por mês, mesmo sem registros.
type Series [12]MonthTotal

func emptySeries() Series {
	var s Series
	for i := range s {
		s[i].Month = i + 1
	}
	return s
}

// AggregateByMonth agrupa pelo mês da data do próprio registro e ignora outros anos.
func AggregateByMonth(records []entity.DatedAmount, year int) Series {
	s := emptySeries()
	for _, r := range records {
		if r.Date.Year() != year {
			continue
		}
		m := int(r.Date.Month()) - 1
		s[m].Sum += r.Amount
		s[m].Count++
	}
	return s
}

// CombineSeries soma mês a mês, sem peso.
func CombineSeries(series ...Series) Series {
	out := emptySeries()
	for _, s := range series {
		for i := range s {
			out[i].Sum += s[i].Sum
			out[i].Count += s[i].Count
		}
	}
	return out
}

func (s Series) Total() int64 {
	var total int64
	for _, m := range s {
		total += m.Sum
	}
	return total
}

func (s Series) Count() int {
	n := 0
	for _, m := range s {
		n += m.Count
	}
	return n
}

// Rate devolve round(n/d*100), ou 0 quando d <= 0. Toda taxa do sistema usa esta regra.
func Rate(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}
