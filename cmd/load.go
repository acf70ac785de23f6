package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/dart-analysis/internal/corpstore"
)

var loadFile string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the corporation registry from a DART corp.xml dump",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("load"); err != nil {
			return err
		}

		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		path := loadFile
		if path == "" {
			path = cfg.Store.CorpFile
		}

		corps := corpstore.SeedCorporations()
		source := "seed"
		if path != "" {
			corps, err = corpstore.LoadCorpFile(path)
			if err != nil {
				return eris.Wrap(err, "load corp file")
			}
			source = path
		}

		inserted, err := st.InsertBatch(ctx, corps)
		if err != nil {
			return eris.Wrap(err, "insert corporations")
		}

		total, err := st.Count(ctx)
		if err != nil {
			return eris.Wrap(err, "count corporations")
		}

		zap.L().Info("registry load complete",
			zap.String("source", source),
			zap.Int("inserted", inserted),
			zap.Int("total", total),
		)
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadFile, "file", "", "path to corp.xml (default from config, seed list if unset)")
	rootCmd.AddCommand(loadCmd)
}
