package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/assistant"
	"github.com/maintodesk/gmao-console/internal/config"
)

func AssistantCmd(cfg config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "assistant",
		Short: "Assistant IA de maintenance",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, in := stdio(cmd)
			a := assistant.New(gateway(cmd, cfg, log), log)

			printTranscript(out, a.History())
			for {
				line, ok := readLine(out, in, "\nVous : ")
				if !ok || line == "/q" {
					return nil
				}
				before := len(a.History())
				if err := a.Send(cmd.Context(), line); err != nil {
					if errors.Is(err, assistant.ErrPending) {
						continue
					}
					return err
				}
				printTranscript(out, a.History()[before:])
			}
		},
	}
}

func printTranscript(w io.Writer, msgs []api.ChatMessage) {
	for _, m := range msgs {
		speaker := "Assistant"
		if m.Role == api.ChatRoleUser {
			speaker = "Vous"
		}
		fmt.Fprintf(w, "%s : %s\n", speaker, m.Text)
	}
}
