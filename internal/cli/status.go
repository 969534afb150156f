package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/cardbank/internal/api/response"
	"github.com/mcoot/cardbank/internal/model"
)

func newStatusCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a mirrored session",
		Long: `Show a session mirrored to storage. Without --session the most recently
updated session is shown. Only useful with --storage redis, since the memory
mirror does not outlive the process that ran the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(false)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			var session *model.Session
			if sessionID != "" {
				session, err = app.Storage.GetSession(cmd.Context(), model.SessionID(sessionID))
			} else {
				session, err = app.Storage.GetLatestSession(cmd.Context())
			}
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(response.SessionFromModel(session))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID (default: latest)")

	return cmd
}
