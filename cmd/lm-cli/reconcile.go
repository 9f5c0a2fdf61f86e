package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var reconcileFile string

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Apply a usage report against the ledger inventory",
	Long: `Reads a JSON usage report (an array of product.feature usage items,
the same shape the cluster agent submits) and applies it to the ledger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(reconcileFile)
		if err != nil {
			return err
		}
		var report []models.ReportItem
		if err := json.Unmarshal(raw, &report); err != nil {
			return fmt.Errorf("invalid report file %s: %w", reconcileFile, err)
		}
		updated, err := client.Reconcile(cmd.Context(), report)
		if err != nil {
			return err
		}
		return printJSON(models.ReconcileResponse{Updated: updated})
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileFile, "file", "", "path to a JSON usage report")
	_ = reconcileCmd.MarkFlagRequired("file")
}
