package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hgb-basel/lineage/internal/address"
	"github.com/hgb-basel/lineage/internal/corrections"
	"github.com/hgb-basel/lineage/internal/pipeline"
	"github.com/hgb-basel/lineage/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database           string
	NumberCorrections  string
	AddressCorrections string
	TypeTable          string
	DossierFilter      string
	Overrides          string
	ExportDir          string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full lineage pipeline",
		Long: `Run the dossier lineage pipeline against a SQLite database.

The pipeline reads the source dossier metadata and entry years from the
database, overlays the manual correction workbooks, computes clusters and
relations, and writes the three result tables back to the database under a
fresh run id. With --export the results are additionally written as CSV.

Example:
  hgb-lineage run --db ./hgb.db --number-corrections Korrektur_Adressen.xlsx \
    --address-corrections DossierZwischenresultat.xlsx --types dossier_type.xlsx`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.NumberCorrections, "number-corrections", "", "house-number correction workbook (.xlsx)")
	cmd.Flags().StringVar(&opts.AddressCorrections, "address-corrections", "", "address intermediate workbook (.xlsx)")
	cmd.Flags().StringVar(&opts.TypeTable, "types", "", "dossier type workbook (.xlsx)")
	cmd.Flags().StringVar(&opts.DossierFilter, "dossiers", "", "CSV restricting the run to listed dossier ids")
	cmd.Flags().StringVar(&opts.Overrides, "overrides", "", "YAML file replacing the built-in part-of overrides")
	cmd.Flags().StringVar(&opts.ExportDir, "export", "", "directory for CSV export of the result tables")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runPipeline(cmd *cobra.Command, opts *RunOptions) error {
	configureLogging(opts.Verbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Info("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	in, cfg, err := loadInputs(ctx, st, opts)
	if err != nil {
		return err
	}

	res := pipeline.Run(in, cfg)

	if err := st.WriteResults(ctx, res.RunID, res.Dossiers, res.Relations); err != nil {
		return WrapExitError(ExitCommandError, "failed to write results", err)
	}
	if opts.ExportDir != "" {
		if err := pipeline.ExportCSV(opts.ExportDir, res); err != nil {
			return WrapExitError(ExitCommandError, "failed to export CSV", err)
		}
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, map[string]any{
		"run_id": res.RunID,
		"stats":  res.Stats,
	}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "run %s: %d dossiers, %d relations, %d clusters, %d flagged for review\n",
			res.RunID, res.Stats.Dossiers, res.Stats.Relations, res.Stats.Clusters, res.Stats.FlaggedForReview)
		return err
	})
}

// loadInputs assembles pipeline inputs from the store and the optional
// correction files.
func loadInputs(ctx context.Context, st *store.Store, opts *RunOptions) (pipeline.Inputs, pipeline.Config, error) {
	var in pipeline.Inputs
	var cfg pipeline.Config

	rows, err := st.ReadDossiers(ctx)
	if err != nil {
		return in, cfg, WrapExitError(ExitCommandError, "failed to read dossiers", err)
	}
	in.Dossiers = rows

	in.EntryYears, err = st.ReadEntryYears(ctx)
	if err != nil {
		return in, cfg, WrapExitError(ExitCommandError, "failed to read entry years", err)
	}

	if opts.DossierFilter != "" {
		ids, err := corrections.LoadDossierFilter(opts.DossierFilter)
		if err != nil {
			return in, cfg, WrapExitError(ExitCommandError, "failed to read dossier filter", err)
		}
		in.Dossiers = filterRows(in.Dossiers, ids)
	}
	if opts.NumberCorrections != "" {
		in.NumberCorrections, err = corrections.LoadNumberCorrections(opts.NumberCorrections)
		if err != nil {
			return in, cfg, WrapExitError(ExitCommandError, "failed to read number corrections", err)
		}
	}
	if opts.AddressCorrections != "" {
		in.AddressCorrections, err = corrections.LoadAddressCorrections(opts.AddressCorrections)
		if err != nil {
			return in, cfg, WrapExitError(ExitCommandError, "failed to read address corrections", err)
		}
	}
	if opts.TypeTable != "" {
		in.Types, err = corrections.LoadDossierTypes(opts.TypeTable)
		if err != nil {
			return in, cfg, WrapExitError(ExitCommandError, "failed to read dossier types", err)
		}
	}
	if opts.Overrides != "" {
		cfg.PartOfOverrides, err = address.LoadOverrides(opts.Overrides)
		if err != nil {
			return in, cfg, WrapExitError(ExitCommandError, "failed to read part-of overrides", err)
		}
	}

	return in, cfg, nil
}

// filterRows keeps only the rows whose id appears in ids, preserving
// order.
func filterRows(rows []store.DossierRow, ids []string) []store.DossierRow {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	var out []store.DossierRow
	for _, r := range rows {
		if keep[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

// configureLogging sets the default logger based on the verbose flag.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
