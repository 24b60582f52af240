package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vehicle_quotation/internal/adapter/persistence"
	"vehicle_quotation/internal/usecase"
)

func newSeedCmd(rt *session) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load vehicles, variations and optionals from a JSON file",
		Long: `Load a catalog file into the configured storage. Entries are upserted by id,
so running the same file twice is harmless.

The file holds three arrays: "vehicles", "variations" and "optionals".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.load(); err != nil {
				return err
			}

			catalog, err := readCatalog(file)
			if err != nil {
				return err
			}

			repos, err := persistence.Open(cmd.Context(), *rt.cfg)
			if err != nil {
				return err
			}
			res, err := usecase.NewCatalogUseCase(repos.Catalog, rt.log).Seed(cmd.Context(), catalog)
			if err != nil {
				return err
			}

			rt.log.Debug("catalog seeded", zap.String("file", file), zap.String("storage_driver", rt.cfg.StorageDriver))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d vehicles, %d variations, %d optionals\n", res.Vehicles, res.Variations, res.Options)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readCatalog(path string) (usecase.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return usecase.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var c usecase.Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return usecase.Catalog{}, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return c, nil
}
