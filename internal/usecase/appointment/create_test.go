package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agendalivre/platform-api/internal/audit"
	domain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/httperr"
	infrarepo "github.com/agendalivre/platform-api/internal/infra/repository"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/testutil"
)

type env struct {
	db     *gorm.DB
	repo   domain.Repository
	audit  *audit.Dispatcher
	tenant *models.Tenant
	client *models.Client
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.NewDB(t)
	tenant := testutil.SeedTenant(t, db)

	return &env{
		db:     db,
		repo:   infrarepo.NewAppointmentGormRepository(db),
		audit:  audit.NewDispatcher(audit.New(db)),
		tenant: tenant,
		client: testutil.SeedClient(t, db, tenant.ID, "Maria"),
	}
}

func (e *env) createInput(serviceIDs []string, date, hhmm string) CreateAppointmentInput {
	return CreateAppointmentInput{
		TenantID:   e.tenant.ID,
		ClientID:   e.client.ID,
		ServiceIDs: serviceIDs,
		Date:       date,
		Time:       hhmm,
	}
}

func TestCreateAppointment(t *testing.T) {
	e := newEnv(t)
	uc := NewCreateAppointment(e.repo, e.audit)

	corte := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 30)
	barba := testutil.SeedService(t, e.db, e.tenant.ID, "Barba", 30, 20)

	ap, err := uc.Execute(context.Background(),
		e.createInput([]string{corte.ID, barba.ID}, "2025-03-10", "10:00"))
	require.NoError(t, err)

	assert.Equal(t, 50, ap.DurationMin, "soma das durações dos serviços")
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Len(t, ap.Services, 2)

	stored, err := e.repo.GetAppointment(context.Background(), e.tenant.ID, ap.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Services, 2)
}

func TestCreateAppointment_DefaultDuration(t *testing.T) {
	e := newEnv(t)
	uc := NewCreateAppointment(e.repo, e.audit)

	// Serviço sem duração cadastrada.
	svc := testutil.SeedService(t, e.db, e.tenant.ID, "Avaliação", 0, 0)

	ap, err := uc.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "09:00"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMin, ap.DurationMin)
}

func TestCreateAppointment_Conflict(t *testing.T) {
	e := newEnv(t)
	uc := NewCreateAppointment(e.repo, e.audit)

	svc := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 60)

	first, err := uc.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "10:00"))
	require.NoError(t, err)

	// 10:30 cruza [10:00, 11:00).
	_, err = uc.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "10:30"))
	require.Error(t, err)

	ce, ok := httperr.AsConflict(err)
	require.True(t, ok, "esperava ConflictError, veio %T", err)
	assert.Equal(t, first.ID, ce.ConflictingAppointmentID)
	assert.Equal(t, "10:00", ce.ConflictStart)
	assert.Equal(t, "11:00", ce.ConflictEnd)

	// 11:00 encosta no fim exclusivo e passa.
	_, err = uc.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "11:00"))
	assert.NoError(t, err)

	// Outra data não conflita.
	_, err = uc.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-11", "10:30"))
	assert.NoError(t, err)
}

func TestCreateAppointment_CancelledStillBlocksSlot(t *testing.T) {
	e := newEnv(t)
	create := NewCreateAppointment(e.repo, e.audit)
	cancel := NewCancelAppointment(e.repo, e.audit)

	svc := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 60)

	ap, err := create.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "10:00"))
	require.NoError(t, err)

	_, err = cancel.Execute(context.Background(), e.tenant.ID, ap.ID, nil)
	require.NoError(t, err)

	_, err = create.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "10:00"))
	_, ok := httperr.AsConflict(err)
	assert.True(t, ok, "cancelado continua ocupando o horário")
}

func TestCreateAppointment_Validation(t *testing.T) {
	e := newEnv(t)
	uc := NewCreateAppointment(e.repo, e.audit)

	svc := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 30)

	_, err := uc.Execute(context.Background(),
		e.createInput(nil, "2025-03-10", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "at_least_one_service"))

	_, err = uc.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "10/03/2025", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, err = uc.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "10h"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, err = uc.Execute(context.Background(),
		e.createInput([]string{svc.ID, "no-such-id"}, "2025-03-10", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointment_TenantIsolation(t *testing.T) {
	e := newEnv(t)
	uc := NewCreateAppointment(e.repo, e.audit)

	svc := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 60)

	_, err := uc.Execute(context.Background(),
		e.createInput([]string{svc.ID}, "2025-03-10", "10:00"))
	require.NoError(t, err)

	// Mesmo slot em outro tenant: serviço alheio não resolve e o
	// agendamento existente não bloqueia.
	other := testutil.SeedTenant(t, e.db)
	otherClient := testutil.SeedClient(t, e.db, other.ID, "João")
	otherSvc := testutil.SeedService(t, e.db, other.ID, "Corte", 50, 60)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		TenantID:   other.ID,
		ClientID:   otherClient.ID,
		ServiceIDs: []string{svc.ID},
		Date:       "2025-03-10",
		Time:       "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		TenantID:   other.ID,
		ClientID:   otherClient.ID,
		ServiceIDs: []string{otherSvc.ID},
		Date:       "2025-03-10",
		Time:       "10:00",
	})
	assert.NoError(t, err)
}

// A checagem de conflito e a gravação não formam uma unidade atômica:
// duas requisições que verificam o mesmo slot antes de qualquer
// gravação passam ambas. O teste reproduz a janela de forma
// determinística, intercalando as etapas na mão.
func TestConflictCheck_NotSerializedWithInsert(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	svc := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 60)
	services := []models.Service{*svc}

	checkA, err := FindOverlapping(ctx, e.repo, e.tenant.ID, "2025-03-10", "10:00", 60, "")
	require.NoError(t, err)
	checkB, err := FindOverlapping(ctx, e.repo, e.tenant.ID, "2025-03-10", "10:30", 60, "")
	require.NoError(t, err)
	assert.Empty(t, checkA)
	assert.Empty(t, checkB)

	apA := &models.Appointment{
		TenantID: e.tenant.ID, ClientID: e.client.ID,
		Date: "2025-03-10", Time: "10:00", DurationMin: 60,
		Status: string(domain.StatusScheduled),
	}
	apB := &models.Appointment{
		TenantID: e.tenant.ID, ClientID: e.client.ID,
		Date: "2025-03-10", Time: "10:30", DurationMin: 60,
		Status: string(domain.StatusScheduled),
	}
	require.NoError(t, e.repo.CreateAppointment(ctx, apA, services))
	require.NoError(t, e.repo.CreateAppointment(ctx, apB, services))

	// Ambos persistidos, em sobreposição.
	overlapping, err := FindOverlapping(ctx, e.repo, e.tenant.ID, "2025-03-10", "10:00", 60, "")
	require.NoError(t, err)
	assert.Len(t, overlapping, 2)
}
