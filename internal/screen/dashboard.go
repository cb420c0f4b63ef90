package screen

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/models"
)

// maxUpcomingPreview caps the upcoming-interventions preview on the dashboard.
const maxUpcomingPreview = 5

// Stats is the aggregated dashboard view.
type Stats struct {
	ClientsCount          int
	ContractsCount        int
	FacturesCount         int
	InterventionsCount    int
	TotalRevenue          float64
	UpcomingInterventions []models.Intervention
}

// Dashboard issues the six read calls as one joined batch. The aggregation is
// all-or-nothing: one failed call leaves every stat at zero behind the banner.
type Dashboard struct {
	api *api.Client
	log zerolog.Logger

	phase  Phase
	banner string
	stats  Stats
}

func NewDashboard(a *api.Client, log zerolog.Logger) *Dashboard {
	return &Dashboard{api: a, log: log.With().Str("screen", "dashboard").Logger(), phase: PhaseLoading}
}

func (d *Dashboard) Phase() Phase   { return d.phase }
func (d *Dashboard) Banner() string { return d.banner }
func (d *Dashboard) Stats() Stats   { return d.stats }

func (d *Dashboard) Load(ctx context.Context) error {
	d.phase = PhaseLoading

	var (
		clients       []models.Client
		contracts     []models.Contract
		factures      []models.Facture
		interventions []models.Intervention
		revenue       float64
		upcoming      []models.Intervention
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { clients, err = d.api.Clients(gctx); return err })
	g.Go(func() (err error) { contracts, err = d.api.Contracts(gctx); return err })
	g.Go(func() (err error) { factures, err = d.api.Factures(gctx); return err })
	g.Go(func() (err error) { interventions, err = d.api.Interventions(gctx); return err })
	g.Go(func() (err error) { revenue, err = d.api.ChiffreAffaires(gctx); return err })
	g.Go(func() (err error) { upcoming, err = d.api.UpcomingInterventions(gctx); return err })

	err := g.Wait()
	d.phase = PhaseReady
	if err != nil {
		d.banner = "Erreur lors du chargement des données du tableau de bord"
		d.stats = Stats{}
		d.log.Error().Err(err).Msg("chargement du tableau de bord échoué")
		return err
	}

	if len(upcoming) > maxUpcomingPreview {
		upcoming = upcoming[:maxUpcomingPreview]
	}
	d.stats = Stats{
		ClientsCount:          len(clients),
		ContractsCount:        len(contracts),
		FacturesCount:         len(factures),
		InterventionsCount:    len(interventions),
		TotalRevenue:          revenue,
		UpcomingInterventions: upcoming,
	}
	d.banner = ""
	return nil
}
