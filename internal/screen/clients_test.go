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

func clientFixture() models.Client {
	return models.Client{
		ClientID:    1,
		FirstName:   "Jean",
		LastName:    "Moreau",
		Email:       "jean.moreau@example.com",
		PhoneNumber: "0612345678",
		Address:     "12 rue des Lilas, Casablanca",
	}
}

func TestClientsSubmitInvalidFormMakesNoCall(t *testing.T) {
	b := newBackend(t)
	nt := &fakeNotifier{}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	s.OpenCreate()
	s.SetField("firstName", "Jean")
	// lastName left blank
	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, 0, b.count(http.MethodPost, "/clients"))
	assert.Equal(t, "Erreur de validation", nt.lastError().Title)
	assert.Equal(t, "Le prénom et le nom sont requis.", nt.lastError().Text)
	assert.True(t, s.ModalOpen(), "modal stays open so the operator can correct the form")
}

func TestClientsEmailValidationOrder(t *testing.T) {
	b := newBackend(t)
	nt := &fakeNotifier{}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	s.OpenCreate()
	s.SetField("firstName", "Jean")
	s.SetField("lastName", "Moreau")
	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, "L'email est requis.", nt.lastError().Text)

	s.SetField("email", "pas-un-email")
	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, "L'email n'est pas valide.", nt.lastError().Text)

	s.SetField("email", "jean@example.com")
	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, "Veuillez remplir tous les champs obligatoires.", nt.lastError().Text)

	assert.Equal(t, 0, b.count(http.MethodPost, "/clients"))
}

func TestClientsCreateFlow(t *testing.T) {
	b := newBackend(t)
	b.respond("GET /clients", []models.Client{})
	b.respond("POST /clients", clientFixture())
	nt := &fakeNotifier{}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	s.OpenCreate()
	s.SetField("firstName", "John")
	s.SetField("lastName", "Doe")
	s.SetField("email", "john.doe@example.com")
	s.SetField("phoneNumber", "0612345678")
	s.SetField("address", "12 rue des Lilas, Casablanca")
	require.NoError(t, s.Submit(context.Background()))

	assert.Equal(t, 1, b.count(http.MethodPost, "/clients"))
	var sent models.ClientInput
	require.NoError(t, json.Unmarshal(b.lastBody(http.MethodPost, "/clients"), &sent))
	assert.Equal(t, models.ClientInput{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "0612345678",
		Address:     "12 rue des Lilas, Casablanca",
	}, sent)

	assert.False(t, s.ModalOpen())
	assert.Equal(t, 2, b.count(http.MethodGet, "/clients"), "initial load plus reload after create")
	assert.Equal(t, "Client créé !", nt.lastSuccess().Title)
	assert.Equal(t, "John Doe a été ajouté avec succès.", nt.lastSuccess().Text)
}

func TestClientsEditRoundTripIsIdempotent(t *testing.T) {
	b := newBackend(t)
	rec := clientFixture()
	b.respond("GET /clients", []models.Client{rec})
	b.respond("PUT /clients/1", rec)
	nt := &fakeNotifier{}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	loaded, ok := s.Record(1)
	require.True(t, ok)
	s.OpenEdit(loaded)
	require.NoError(t, s.Submit(context.Background()))

	var sent models.ClientInput
	require.NoError(t, json.Unmarshal(b.lastBody(http.MethodPut, "/clients/1"), &sent))
	assert.Equal(t, models.ClientInput{
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Email:       rec.Email,
		PhoneNumber: rec.PhoneNumber,
		Address:     rec.Address,
	}, sent, "submitting without changes sends the record's editable fields unchanged")
	assert.Equal(t, "Client modifié !", nt.lastSuccess().Title)
}

func TestClientsDuplicateEmailKeepsModalOpen(t *testing.T) {
	b := newBackend(t)
	b.respond("GET /clients", []models.Client{})
	b.fail("POST /clients", http.StatusConflict, "duplicate key value violates unique constraint")
	nt := &fakeNotifier{}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	s.OpenCreate()
	s.SetField("firstName", "Jean")
	s.SetField("lastName", "Moreau")
	s.SetField("email", "jean.moreau@example.com")
	s.SetField("phoneNumber", "0612345678")
	s.SetField("address", "12 rue des Lilas")
	require.Error(t, s.Submit(context.Background()))

	assert.Equal(t, "Client déjà existant", nt.lastError().Title)
	assert.True(t, s.ModalOpen())
	assert.Equal(t, "jean.moreau@example.com", s.FormValue("email"), "operator input survives the failure")
}

func TestClientsDeleteDeclinedMakesNoCall(t *testing.T) {
	b := newBackend(t)
	b.respond("GET /clients", []models.Client{clientFixture()})
	nt := &fakeNotifier{confirm: false}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Delete(context.Background(), 1))

	assert.Equal(t, 1, nt.confirmAsks)
	assert.Equal(t, 0, b.count(http.MethodDelete, "/clients/1"))
	assert.Len(t, s.Items(), 1)
}

func TestClientsDeleteConstraintKeepsList(t *testing.T) {
	b := newBackend(t)
	b.respond("GET /clients", []models.Client{clientFixture()})
	b.fail("DELETE /clients/1", http.StatusConflict, "foreign key constraint fails")
	nt := &fakeNotifier{confirm: true}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	require.Error(t, s.Delete(context.Background(), 1))

	assert.Equal(t, "Impossible de supprimer ce client", nt.lastError().Title)
	assert.Len(t, s.Items(), 1, "the visible list is untouched by a failed delete")
}

func TestClientsDeleteSuccessNamesClient(t *testing.T) {
	b := newBackend(t)
	b.respond("GET /clients", []models.Client{clientFixture()})
	b.handle("DELETE /clients/1", func(w http.ResponseWriter, r *http.Request) {
		b.respond("GET /clients", []models.Client{})
		w.WriteHeader(http.StatusNoContent)
	})
	nt := &fakeNotifier{confirm: true}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Delete(context.Background(), 1))

	assert.Equal(t, "Client supprimé !", nt.lastSuccess().Title)
	assert.Equal(t, "Jean Moreau a été supprimé avec succès.", nt.lastSuccess().Text)
	assert.Empty(t, s.Items())
}

func TestClientsLoadFailureKeepsPreviousItems(t *testing.T) {
	b := newBackend(t)
	b.respond("GET /clients", []models.Client{clientFixture()})
	nt := &fakeNotifier{}
	s := NewClients(b.gateway(), nt, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Items(), 1)

	b.fail("GET /clients", http.StatusInternalServerError, "internal server error")
	require.Error(t, s.Load(context.Background()))

	assert.Equal(t, "Erreur lors du chargement des clients", s.Banner())
	assert.Len(t, s.Items(), 1, "previous items stay visible behind the banner")
	assert.Equal(t, "Erreur de chargement", nt.lastError().Title)
}
