package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/seed"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Run the one-shot seed pipeline and exit",
	Long: `Bootstrap reconciles the role catalog and provisions the default
admin identity (user, account, workspace, OWNER membership), then exits.

The command runs once, prints a JSON result to stdout, and exits 0 on
success or non-zero on failure. It is safe to run repeatedly: every
creation is guarded by an existence check.`,
	RunE: runBootstrap,
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Bootstrap.Timeout)
	defer cancel()

	if app.otelProvider != nil {
		defer func() {
			shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutCancel()
			if err := app.otelProvider.Shutdown(shutCtx); err != nil {
				slog.Warn("OTEL shutdown error", "err", err)
			}
		}()
	}

	slog.Info("starting seed")

	result, err := app.seeder.Run(ctx)
	if err != nil {
		if result != nil {
			printSeedResult(result)
		}
		return fmt.Errorf("seed failed: %w", err)
	}

	printSeedResult(result)
	slog.Info("seed completed successfully")
	return nil
}

func printSeedResult(result *seed.Result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		// Fallback to plain text if JSON encoding somehow fails.
		fmt.Fprintf(os.Stdout, `{"state":%q}`+"\n", result.State)
	}
}
