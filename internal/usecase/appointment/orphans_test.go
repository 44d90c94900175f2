package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/testutil"
)

// seedOrphan insere um agendamento direto na tabela, sem vínculo de
// serviço, reproduzindo a anomalia que o reparo corrige.
func seedOrphan(t *testing.T, e *env, date, hhmm string) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		TenantID:    e.tenant.ID,
		ClientID:    e.client.ID,
		Date:        date,
		Time:        hhmm,
		DurationMin: 60,
		Status:      string(domain.StatusScheduled),
	}
	require.NoError(t, e.db.Create(ap).Error)
	return ap
}

func TestFindOrphanAppointments(t *testing.T) {
	e := newEnv(t)
	create := NewCreateAppointment(e.repo, e.audit)
	find := NewFindOrphanAppointments(e.repo)

	svc := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 60)

	_, err := create.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "10:00"))
	require.NoError(t, err)

	orphan := seedOrphan(t, e, "2025-03-10", "14:00")

	orphans, err := find.Execute(context.Background(), e.tenant.ID)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, orphan.ID, orphans[0].ID)
}

func TestFixOrphanAppointments(t *testing.T) {
	e := newEnv(t)
	find := NewFindOrphanAppointments(e.repo)
	fix := NewFixOrphanAppointments(e.repo, e.audit)

	svc := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 60)

	seedOrphan(t, e, "2025-03-10", "09:00")
	seedOrphan(t, e, "2025-03-10", "11:00")

	report, err := fix.Execute(context.Background(), e.tenant.ID, svc.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Fixed)
	assert.Empty(t, report.Errors)

	orphans, err := find.Execute(context.Background(), e.tenant.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestFixOrphanAppointments_UnknownService(t *testing.T) {
	e := newEnv(t)
	fix := NewFixOrphanAppointments(e.repo, e.audit)

	seedOrphan(t, e, "2025-03-10", "09:00")

	_, err := fix.Execute(context.Background(), e.tenant.ID, "no-such-service", nil)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
