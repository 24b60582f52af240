package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vehicle_quotation/internal/infrastructure/database"
)

func newTablesCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Create the DynamoDB tables and indexes that do not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.load(); err != nil {
				return err
			}

			ddb, err := database.ConnectDynamoDB(cmd.Context(), rt.cfg.AWS)
			if err != nil {
				return err
			}

			created, err := database.EnsureTables(cmd.Context(), ddb, database.Specs(rt.cfg.Tables))
			if err != nil {
				return fmt.Errorf("ensure tables: %w", err)
			}
			rt.log.Info("tables ready", zap.Strings("created", created))

			if len(created) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All tables already exist.")
				return nil
			}
			for _, name := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", name)
			}
			return nil
		},
	}
}
