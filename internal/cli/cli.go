// Package cli wires the screens to cobra subcommands: one command per screen,
// an interactive loop per resource.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/config"
)

// Root builds the command tree. The base URL can be overridden per invocation
// with --base-url, taking precedence over the environment.
func Root(cfg config.Config, log zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "gmao-console",
		Short:         "Console de gestion de maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("base-url", "", "URL de base de l'API (défaut: API_BASE_URL)")

	root.AddCommand(
		ClientsCmd(cfg, log),
		ContractsCmd(cfg, log),
		InterventionsCmd(cfg, log),
		EquipmentCmd(cfg, log),
		FacturesCmd(cfg, log),
		TechniciansCmd(cfg, log),
		DashboardCmd(cfg, log),
		AssistantCmd(cfg, log),
	)
	return root
}

// gateway builds the injected API client for one command run.
func gateway(cmd *cobra.Command, cfg config.Config, log zerolog.Logger) *api.Client {
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		cfg.BaseURL = v
	}
	return api.New(cfg, log)
}

func stdio(cmd *cobra.Command) (io.Writer, *bufio.Reader) {
	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()
	if in == nil {
		in = os.Stdin
	}
	return out, bufio.NewReader(in)
}

// readLine prompts and returns one trimmed line; io errors read as quit.
func readLine(out io.Writer, in *bufio.Reader, prompt string) (string, bool) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// formatDate renders an ISO date or timestamp the French way, "-" when absent.
func formatDate(v string) string {
	if v == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return v
}

// formatDateTime keeps the clock part for scheduled interventions.
func formatDateTime(v string) string {
	if v == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("02/01/2006 15:04")
		}
	}
	return v
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
