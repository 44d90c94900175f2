package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/platform-api/internal/models"
)

func TestMinutesOf(t *testing.T) {
	m, err := MinutesOf("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = MinutesOf("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = MinutesOf("9h30")
	assert.Error(t, err)

	_, err = MinutesOf("25:00")
	assert.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:30", FormatMinutes(570))
	assert.Equal(t, "00:05", FormatMinutes(5))
	assert.Equal(t, "10:40", FormatMinutes(640))
}

func TestDurationFor(t *testing.T) {
	services := []models.Service{
		{Name: "Corte", DurationMin: 30},
		{Name: "Barba", DurationMin: 20},
	}
	assert.Equal(t, 50, DurationFor(services))

	// Soma zero cai no default.
	zeroed := []models.Service{{DurationMin: 0}, {DurationMin: 0}}
	assert.Equal(t, DefaultDurationMin, DurationFor(zeroed))
	assert.Equal(t, DefaultDurationMin, DurationFor(nil))
}

func TestOverlaps_HalfOpenIntervals(t *testing.T) {
	// [600, 660) contra vizinhos.
	assert.True(t, Overlaps(600, 660, 630, 690), "interseção parcial")
	assert.True(t, Overlaps(600, 660, 600, 660), "mesmo slot")
	assert.True(t, Overlaps(600, 660, 570, 610), "cruza o início")
	assert.True(t, Overlaps(600, 660, 610, 650), "contido")

	// Encostar não conflita: fim exclusivo.
	assert.False(t, Overlaps(600, 660, 660, 720))
	assert.False(t, Overlaps(600, 660, 540, 600))
}

func TestFindConflicts_IgnoresStatus(t *testing.T) {
	existing := []models.Appointment{
		{
			ID:     "cancelled-one",
			Time:   "10:00",
			Status: string(StatusCancelled),
			Services: []models.Service{
				{DurationMin: 60},
			},
		},
	}

	// Agendamento cancelado continua ocupando o horário.
	conflicts := FindConflicts(existing, 630, 30)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "cancelled-one", conflicts[0].ID)
}

func TestFindConflicts_FallsBackToStoredDuration(t *testing.T) {
	existing := []models.Appointment{
		{ID: "no-services", Time: "14:00", DurationMin: 45},
	}

	// [14:00, 14:45) ocupado pela duração persistida.
	assert.Len(t, FindConflicts(existing, minutes(t, "14:30"), 30), 1)
	assert.Empty(t, FindConflicts(existing, minutes(t, "14:45"), 30))
}

func TestWindow(t *testing.T) {
	ap := &models.Appointment{
		Time:        "09:00",
		DurationMin: 60,
		Services: []models.Service{
			{DurationMin: 30},
			{DurationMin: 20},
		},
	}

	start, end, err := Window(ap)
	require.NoError(t, err)
	assert.Equal(t, 540, start)
	// A soma dos serviços prevalece sobre a duração persistida.
	assert.Equal(t, 590, end)
}

func minutes(t *testing.T, hhmm string) int {
	t.Helper()
	m, err := MinutesOf(hhmm)
	require.NoError(t, err)
	return m
}
