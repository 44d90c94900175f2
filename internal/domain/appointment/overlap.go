package appointment

import (
	"fmt"
	"time"

	"github.com/agendalivre/platform-api/internal/models"
)

// Duração atribuída quando a soma dos serviços é zero.
const DefaultDurationMin = 60

func MinutesOf(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// SumDurations soma a duração dos serviços, sem aplicar o default.
func SumDurations(services []models.Service) int {
	sum := 0
	for _, s := range services {
		sum += s.DurationMin
	}
	return sum
}

// DurationFor é a duração efetiva de um conjunto de serviços.
func DurationFor(services []models.Service) int {
	if sum := SumDurations(services); sum > 0 {
		return sum
	}
	return DefaultDurationMin
}

// Overlaps testa a interseção de dois intervalos semiabertos
// [aStart, aEnd) e [bStart, bEnd), em minutos do dia.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// Window devolve o intervalo ocupado por um agendamento existente.
// O fim vem da soma dos serviços vinculados; sem serviços vale a
// duração persistida.
func Window(ap *models.Appointment) (start, end int, err error) {
	start, err = MinutesOf(ap.Time)
	if err != nil {
		return 0, 0, err
	}

	dur := SumDurations(ap.Services)
	if dur == 0 {
		dur = ap.DurationMin
	}
	return start, start + dur, nil
}

// FindConflicts devolve os agendamentos cujo intervalo cruza
// [startMin, startMin+durationMin). O status dos existentes não é
// filtrado: agendamentos cancelados continuam bloqueando o horário.
func FindConflicts(
	existing []models.Appointment,
	startMin int,
	durationMin int,
) []models.Appointment {

	endMin := startMin + durationMin

	var conflicts []models.Appointment
	for _, ap := range existing {
		exStart, exEnd, err := Window(&ap)
		if err != nil {
			continue
		}
		if Overlaps(startMin, endMin, exStart, exEnd) {
			conflicts = append(conflicts, ap)
		}
	}
	return conflicts
}
