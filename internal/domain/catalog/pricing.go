// Package catalog resolve preço e duração efetivos de serviços.
package catalog

import (
	"time"

	"github.com/agendalivre/platform-api/internal/models"
)

const dateLayout = "2006-01-02"

// EffectiveValue devolve o preço do serviço para uma data: o valor
// promocional quando a data cai dentro da janela [start, end]
// (inclusiva), senão o valor base. Qualquer falha de parse das datas
// cai no valor base, nunca em erro.
func EffectiveValue(s *models.Service, onDate string) float64 {
	if s.PromotionalValue == nil || s.PromotionStartDate == nil || s.PromotionEndDate == nil {
		return s.Value
	}

	d, err := time.Parse(dateLayout, onDate)
	if err != nil {
		return s.Value
	}
	start, err := time.Parse(dateLayout, *s.PromotionStartDate)
	if err != nil {
		return s.Value
	}
	end, err := time.Parse(dateLayout, *s.PromotionEndDate)
	if err != nil {
		return s.Value
	}

	if !d.Before(start) && !d.After(end) {
		return *s.PromotionalValue
	}
	return s.Value
}
