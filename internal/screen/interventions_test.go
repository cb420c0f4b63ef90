package screen

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintodesk/gmao-console/internal/models"
)

func interventionBackend(t *testing.T, interventions []models.Intervention) *backend {
	t.Helper()
	b := newBackend(t)
	owner := clientFixture()
	b.respond("GET /interventions", interventions)
	b.respond("GET /contracts", []models.Contract{{ID: 10, Client: &owner}})
	return b
}

func TestInterventionsPastDateRejectedOnCreate(t *testing.T) {
	b := interventionBackend(t, nil)
	nt := &fakeNotifier{}
	s := NewInterventions(b.gateway(), nt, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local) }

	require.NoError(t, s.Load(context.Background()))
	s.OpenCreate()
	s.SetField("title", "Révision chaudière")
	s.SetField("description", "Contrôle annuel")
	s.SetField("contractId", "10")
	s.SetField("scheduledTime", "2026-03-14T09:00")
	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, 0, b.count(http.MethodPost, "/interventions"))
	assert.Equal(t, "Date invalide", nt.lastError().Title)
	assert.Equal(t, "La date et l'heure doivent être dans le futur.", nt.lastError().Text)
}

func TestInterventionsPastDateAllowedOnEdit(t *testing.T) {
	owner := clientFixture()
	existing := models.Intervention{
		ID:            5,
		Title:         "Révision chaudière",
		Description:   "Contrôle annuel",
		ScheduledTime: "2026-01-10T09:00:00",
		Contract:      &models.Contract{ID: 10, Client: &owner},
	}
	b := interventionBackend(t, []models.Intervention{existing})
	b.respond("PUT /interventions/5", existing)
	nt := &fakeNotifier{}
	s := NewInterventions(b.gateway(), nt, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local) }

	require.NoError(t, s.Load(context.Background()))
	rec, ok := s.Record(5)
	require.True(t, ok)
	s.OpenEdit(rec)
	assert.Equal(t, "2026-01-10T09:00", s.FormValue("scheduledTime"), "datetime-local precision")
	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, 1, b.count(http.MethodPut, "/interventions/5"))
	assert.Equal(t, "Intervention modifiée !", nt.lastSuccess().Title)
}

func TestInterventionsCreateSendsContractID(t *testing.T) {
	b := interventionBackend(t, nil)
	b.respond("POST /interventions", models.Intervention{ID: 6})
	nt := &fakeNotifier{}
	s := NewInterventions(b.gateway(), nt, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local) }

	require.NoError(t, s.Load(context.Background()))
	s.OpenCreate()
	s.SetField("title", "Dépannage ascenseur")
	s.SetField("description", "Panne moteur")
	s.SetField("contractId", "10")
	s.SetField("scheduledTime", "2026-03-20T14:30")
	require.NoError(t, s.Submit(context.Background()))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(b.lastBody(http.MethodPost, "/interventions"), &sent))
	assert.Equal(t, float64(10), sent["contractId"])
	assert.Equal(t, "2026-03-20T14:30", sent["scheduledTime"])
	assert.Equal(t, "L'intervention \"Dépannage ascenseur\" a été planifiée pour Jean Moreau.", nt.lastSuccess().Text)
}

func TestInterventionsScheduleConflictWording(t *testing.T) {
	b := interventionBackend(t, nil)
	b.fail("POST /interventions", http.StatusConflict, "schedule conflict with intervention 3")
	nt := &fakeNotifier{}
	s := NewInterventions(b.gateway(), nt, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local) }

	require.NoError(t, s.Load(context.Background()))
	s.OpenCreate()
	s.SetField("title", "Dépannage ascenseur")
	s.SetField("description", "Panne moteur")
	s.SetField("contractId", "10")
	s.SetField("scheduledTime", "2026-03-20T14:30")
	require.Error(t, s.Submit(context.Background()))

	assert.Equal(t, "Conflit de planification", nt.lastError().Title)
	assert.Equal(t, "Une autre intervention est déjà planifiée à cette date et heure.", nt.lastError().Text)
	assert.True(t, s.ModalOpen())
}

func TestInterventionsCancellationWording(t *testing.T) {
	owner := clientFixture()
	existing := models.Intervention{
		ID:       5,
		Title:    "Révision chaudière",
		Contract: &models.Contract{ID: 10, Client: &owner},
	}
	b := interventionBackend(t, []models.Intervention{existing})
	b.handle("DELETE /interventions/5", func(w http.ResponseWriter, r *http.Request) {
		b.respond("GET /interventions", []models.Intervention{})
		w.WriteHeader(http.StatusNoContent)
	})
	nt := &fakeNotifier{confirm: true}
	s := NewInterventions(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Delete(context.Background(), 5))

	assert.Equal(t, 1, b.count(http.MethodDelete, "/interventions/5"), "cancelling performs a hard delete")
	assert.Equal(t, "Intervention annulée !", nt.lastSuccess().Title)
	assert.Equal(t, "Révision chaudière a été annulée avec succès.", nt.lastSuccess().Text)
}
