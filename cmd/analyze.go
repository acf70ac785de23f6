package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/sells-group/dart-analysis/internal/financial"
	"github.com/sells-group/dart-analysis/internal/model"
	"github.com/sells-group/dart-analysis/pkg/opendart"
)

var (
	analyzeCorp     string
	analyzeYear     string
	analyzeReport   string
	analyzeDetailed bool
	analyzeFSDiv    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a one-shot filing analysis and print the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := ensureCorporations(ctx, st); err != nil {
			return err
		}

		dart := opendart.NewClient(cfg.OpenDART.Key,
			opendart.WithBaseURL(cfg.OpenDART.BaseURL),
			opendart.WithLimiter(rate.NewLimiter(rate.Limit(cfg.OpenDART.RPS), cfg.OpenDART.Burst)),
		)

		// AI commentary is not reachable from this command, so no composer.
		svc := financial.NewService(dart, st, nil)

		p := analyzeParams()

		var result any
		if analyzeDetailed {
			result, err = svc.DetailedAnalysis(ctx, p, model.Consolidation(analyzeFSDiv))
		} else {
			result, err = svc.Analysis(ctx, p)
		}
		if err != nil {
			return eris.Wrap(err, "analyze filing")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

// analyzeParams maps the analyze flags onto the service parameters.
func analyzeParams() financial.Params {
	return financial.Params{
		CorpCode: analyzeCorp,
		Year:     analyzeYear,
		Report:   model.ReportCode(analyzeReport),
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCorp, "corp", "", "8-digit DART corporation code (required)")
	analyzeCmd.Flags().StringVar(&analyzeYear, "year", "", "business year (default previous year)")
	analyzeCmd.Flags().StringVar(&analyzeReport, "report", "", "report code (default 11011, annual)")
	analyzeCmd.Flags().BoolVar(&analyzeDetailed, "detailed", false, "use the full account listing for EBITDA and coverage ratios")
	analyzeCmd.Flags().StringVar(&analyzeFSDiv, "fs-div", "", "statement scope for --detailed: OFS or CFS (default OFS)")
	_ = analyzeCmd.MarkFlagRequired("corp")
	rootCmd.AddCommand(analyzeCmd)
}
