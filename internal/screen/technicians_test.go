package screen

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintodesk/gmao-console/internal/models"
)

func TestTechniciansRequiredFieldsWording(t *testing.T) {
	b := newBackend(t)
	nt := &fakeNotifier{}
	s := NewTechnicians(b.gateway(), nt, zerolog.Nop())

	s.OpenCreate()
	s.SetField("firstName", "Karim")
	s.SetField("lastName", "Bennis")
	s.SetField("email", "karim@example.com")
	// employeeId left blank
	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, 0, b.count(http.MethodPost, "/techniciens"))
	assert.Equal(t, "Tous les champs obligatoires doivent être remplis.", nt.lastError().Text)
}

func TestTechniciansCreateUsesFrenchRoute(t *testing.T) {
	b := newBackend(t)
	b.respond("GET /techniciens", []models.Technician{})
	b.respond("POST /techniciens", models.Technician{ID: 1})
	nt := &fakeNotifier{}
	s := NewTechnicians(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	s.OpenCreate()
	s.SetField("firstName", "Karim")
	s.SetField("lastName", "Bennis")
	s.SetField("email", "karim@example.com")
	s.SetField("employeeId", "EMP-042")
	require.NoError(t, s.Submit(context.Background()))

	var sent models.TechnicianInput
	require.NoError(t, json.Unmarshal(b.lastBody(http.MethodPost, "/techniciens"), &sent))
	assert.Equal(t, "EMP-042", sent.EmployeeID)
	assert.Equal(t, string(models.SpecializationGeneral), sent.Specialization, "default specialization applies")
	assert.Equal(t, "Karim Bennis a été ajouté avec succès.", nt.lastSuccess().Text)
}

func TestEquipmentRequiresNameAndClient(t *testing.T) {
	b := newBackend(t)
	nt := &fakeNotifier{}
	s := NewEquipment(b.gateway(), nt, zerolog.Nop())

	s.OpenCreate()
	s.SetField("name", "Chaudière A12")
	// clientId left blank
	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, 0, b.count(http.MethodPost, "/equipment"))
	assert.Equal(t, "Le nom et le client sont requis.", nt.lastError().Text)
}

func TestEquipmentCreateSendsOwner(t *testing.T) {
	b := newBackend(t)
	b.respond("GET /equipment", []models.Equipment{})
	b.respond("GET /clients", []models.Client{clientFixture()})
	b.respond("POST /equipment", models.Equipment{ID: 9})
	nt := &fakeNotifier{}
	s := NewEquipment(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	s.OpenCreate()
	s.SetField("name", "Chaudière A12")
	s.SetField("clientId", "1")
	require.NoError(t, s.Submit(context.Background()))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(b.lastBody(http.MethodPost, "/equipment"), &sent))
	assert.Equal(t, float64(1), sent["clientId"])
	assert.Equal(t, string(models.EquipmentStatusOperational), sent["status"], "default status applies")
	assert.Equal(t, "L'équipement \"Chaudière A12\" a été ajouté pour Jean Moreau.", nt.lastSuccess().Text)
}
