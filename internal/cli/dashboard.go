package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maintodesk/gmao-console/internal/config"
	"github.com/maintodesk/gmao-console/internal/screen"
)

func DashboardCmd(cfg config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Vue d'ensemble de l'activité",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := stdio(cmd)
			d := screen.NewDashboard(gateway(cmd, cfg, log), log)
			err := d.Load(cmd.Context())
			renderDashboard(out, d)
			return err
		},
	}
}

func renderDashboard(w io.Writer, d *screen.Dashboard) {
	if b := d.Banner(); b != "" {
		fmt.Fprintf(w, "!! %s\n", b)
	}
	st := d.Stats()

	fmt.Fprintln(w, "\nTableau de bord")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Clients\t%d\n", st.ClientsCount)
	fmt.Fprintf(tw, "Contrats\t%d\n", st.ContractsCount)
	fmt.Fprintf(tw, "Interventions\t%d\n", st.InterventionsCount)
	fmt.Fprintf(tw, "Factures\t%d\n", st.FacturesCount)
	fmt.Fprintf(tw, "Chiffre d'affaires\t%s MAD\n", strconv.FormatFloat(st.TotalRevenue, 'f', 2, 64))
	tw.Flush()

	fmt.Fprintln(w, "\nProchaines interventions")
	if len(st.UpcomingInterventions) == 0 {
		fmt.Fprintln(w, "Aucune intervention à venir")
		return
	}
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTitre\tClient\tDate prévue\tStatut")
	for _, i := range st.UpcomingInterventions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i.ID, i.Title, i.ClientName(), formatDateTime(i.ScheduledTime), orDash(i.Status.Label()))
	}
	tw.Flush()
}
