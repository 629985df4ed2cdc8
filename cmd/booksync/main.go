package main

import (
	"context"
	"os"

	"booksync/internal/config"
	"booksync/internal/export"
	"booksync/internal/logging"
	"booksync/internal/reconcile"
	"booksync/internal/sheet"
	"booksync/internal/store"
	"booksync/internal/usecase"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "booksync <store-dsn> <input.xlsx> <output.xlsx>",
		Short: "Import book titles and authors from a workbook, then export the store",
		Long: "booksync matches every row of the input workbook to a stored book by ISBN,\n" +
			"updates its title, records its authors in order and finally writes the\n" +
			"Books, Authors and BooksAuthors tables to the output workbook.",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				cmd.PrintErrln("config:", err)
				return err
			}
			log := logging.New(cfg.Log.Level, cfg.Log.Format)

			if err := run(cmd.Context(), log, cfg, args[0], args[1], args[2]); err != nil {
				log.WithError(err).Error("booksync failed")
				return err
			}
			return nil
		},
	}
}

// run owns the store connection; it is closed on every return path.
func run(ctx context.Context, log *logrus.Logger, cfg *config.Config, dsn, input, output string) error {
	pool, err := store.Open(ctx, dsn, store.PoolOptions{
		MaxConns:       cfg.Database.MaxConns,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		return errors.Wrap(err, "open store")
	}
	defer pool.Close()
	log.WithField("dsn", store.RedactDSN(dsn)).Info("database connection OK")

	return syncWorkbooks(ctx, log, store.NewPG(pool), input, output)
}

type repository interface {
	usecase.Store
	usecase.RunLog
}

// syncWorkbooks imports input into repo and exports repo to output. Row
// failures are logged by the import and do not fail the run, and neither
// does a run that cannot be recorded.
func syncWorkbooks(ctx context.Context, log logrus.FieldLogger, repo repository, input, output string) error {
	table, err := sheet.ReadFile(input)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	report, err := reconcile.NewReconciler(repo, log).Import(ctx, table)
	if err != nil {
		return errors.Wrap(err, "import")
	}
	if report.RowsFailed() > 0 {
		log.WithFields(logrus.Fields{
			"run_id": report.RunID,
			"failed": report.RowsFailed(),
		}).Warn("some rows were not imported")
	}
	if err := repo.RecordRun(ctx, report.Run(input)); err != nil {
		log.WithError(err).WithField("run_id", report.RunID).Warn("cannot record import run")
	}

	w, err := sheet.NewWriter()
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	closed := false
	defer func() {
		if !closed {
			_ = w.Close()
		}
	}()

	if err := export.NewExporter(repo, log).Export(ctx, w); err != nil {
		return errors.Wrap(err, "export")
	}
	if err := w.SaveAs(output); err != nil {
		return errors.Wrap(err, "write output")
	}
	closed = true
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "close output %s", output)
	}
	log.WithField("path", output).Info("export written")
	return nil
}
