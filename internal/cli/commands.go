package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maintodesk/gmao-console/internal/config"
	"github.com/maintodesk/gmao-console/internal/models"
	"github.com/maintodesk/gmao-console/internal/notify"
	"github.com/maintodesk/gmao-console/internal/screen"
)

func ClientsCmd(cfg config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "Gestion des clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, in := stdio(cmd)
			s := screen.NewClients(gateway(cmd, cfg, log), notify.NewTerminal(out, in), log)
			return runResource(cmd.Context(), out, in, s.Controller, renderClients)
		},
	}
}

func renderClients(w io.Writer, items []models.Client) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tClient\tEmail\tTéléphone\tAdresse\tCréé le")
	if len(items) == 0 {
		fmt.Fprintln(tw, "-\tAucun client trouvé\t\t\t\t")
	}
	for _, c := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			c.ClientID, c.FullName(), orDash(c.Email), orDash(c.PhoneNumber), orDash(c.Address), formatDate(c.CreatedAt))
	}
	tw.Flush()
}

func ContractsCmd(cfg config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "contrats",
		Short: "Gestion des contrats",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, in := stdio(cmd)
			s := screen.NewContracts(gateway(cmd, cfg, log), notify.NewTerminal(out, in), log)
			return runResource(cmd.Context(), out, in, s.Controller, renderContracts)
		},
	}
}

func renderContracts(w io.Writer, items []models.Contract) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tClient\tEmail\tCréé le")
	if len(items) == 0 {
		fmt.Fprintln(tw, "-\tAucun contrat trouvé\t\t")
	}
	for _, c := range items {
		email := "-"
		if c.Client != nil {
			email = orDash(c.Client.Email)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.ClientName(), email, formatDate(c.CreatedAt))
	}
	tw.Flush()
}

func InterventionsCmd(cfg config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "interventions",
		Short: "Planification des interventions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, in := stdio(cmd)
			s := screen.NewInterventions(gateway(cmd, cfg, log), notify.NewTerminal(out, in), log)
			return runResource(cmd.Context(), out, in, s.Controller, renderInterventions)
		},
	}
}

func renderInterventions(w io.Writer, items []models.Intervention) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTitre\tClient\tDate prévue\tStatut")
	if len(items) == 0 {
		fmt.Fprintln(tw, "-\tAucune intervention trouvée\t\t\t")
	}
	for _, i := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i.ID, i.Title, i.ClientName(), formatDateTime(i.ScheduledTime), orDash(i.Status.Label()))
	}
	tw.Flush()
}

func EquipmentCmd(cfg config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "equipements",
		Short: "Gestion du parc d'équipements",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, in := stdio(cmd)
			s := screen.NewEquipment(gateway(cmd, cfg, log), notify.NewTerminal(out, in), log)
			return runResource(cmd.Context(), out, in, s.Controller, makeRenderEquipment(s))
		},
	}
}

func makeRenderEquipment(s *screen.EquipmentScreen) func(io.Writer, []models.Equipment) {
	return func(w io.Writer, items []models.Equipment) {
		byID := make(map[int64]models.Client, len(s.Clients()))
		for _, c := range s.Clients() {
			byID[c.ClientID] = c
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCode\tNom\tType\tStatut\tClient")
		if len(items) == 0 {
			fmt.Fprintln(tw, "-\tAucun équipement trouvé\t\t\t\t")
		}
		for _, e := range items {
			clientName := "Client inconnu"
			if id, ok := e.OwnerID(); ok {
				if c, ok := byID[id]; ok {
					clientName = c.FullName()
				}
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				e.ID, orDash(e.EquipmentCode), e.Name, orDash(e.Type.Label()), orDash(e.Status.Label()), clientName)
		}
		tw.Flush()
	}
}

func FacturesCmd(cfg config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "factures",
		Short: "Gestion des factures",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, in := stdio(cmd)
			s := screen.NewFactures(gateway(cmd, cfg, log), notify.NewTerminal(out, in), log)
			return runResource(cmd.Context(), out, in, s.Controller, renderFactures)
		},
	}
}

func renderFactures(w io.Writer, items []models.Facture) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNuméro\tDescription\tTotal\tStatut\tÉchéance")
	if len(items) == 0 {
		fmt.Fprintln(tw, "-\tAucune facture trouvée\t\t\t\t")
	}
	for _, f := range items {
		total := f.TotalAmount
		if total == nil {
			total = f.Price
		}
		amount := "-"
		if total != nil {
			amount = strconv.FormatFloat(*total, 'f', 2, 64) + " MAD"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, orDash(f.InvoiceNumber), orDash(f.Description), amount, orDash(f.Status.Label()), formatDate(f.DueDate))
	}
	tw.Flush()
}

func TechniciansCmd(cfg config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "techniciens",
		Short: "Gestion des techniciens",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, in := stdio(cmd)
			s := screen.NewTechnicians(gateway(cmd, cfg, log), notify.NewTerminal(out, in), log)
			return runResource(cmd.Context(), out, in, s.Controller, renderTechnicians)
		},
	}
}

func renderTechnicians(w io.Writer, items []models.Technician) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTechnicien\tEmail\tID employé\tSpécialisation\tStatut")
	if len(items) == 0 {
		fmt.Fprintln(tw, "-\tAucun technicien trouvé\t\t\t\t")
	}
	for _, t := range items {
		status := "Actif"
		if !t.Active() {
			status = "Inactif"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.FullName(), orDash(t.Email), orDash(t.EmployeeID), orDash(t.Specialization.Label()), status)
	}
	tw.Flush()
}
