package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/ent/product"
	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// ReconcileService applies license-server usage reports to the inventory
// rows of the reporting cluster.
type ReconcileService struct {
	client *ent.Client
}

// NewReconcileService creates a new ReconcileService.
func NewReconcileService(client *ent.Client) *ReconcileService {
	return &ReconcileService{client: client}
}

// Apply writes a usage report in one transaction. Features the cluster does
// not track are skipped with a warning; a reported used count above the
// reported total is clamped to the total. Re-applying the same report is a
// no-op in effect. Returns the number of inventories updated.
func (s *ReconcileService) Apply(ctx context.Context, clientID string, report []models.ReportItem) (int, error) {
	if len(report) == 0 {
		return 0, NewValidationError("report", "at least one item is required")
	}
	for _, item := range report {
		if _, _, err := models.ParseProductFeature(item.ProductFeature); err != nil {
			return 0, NewValidationError("product_feature", err.Error())
		}
		if item.Total < 0 || item.Used < 0 {
			return 0, NewValidationError("report", "counts must be non-negative")
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	clusterRow, err := tx.Cluster.Query().
		Where(cluster.ClientID(clientID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to resolve cluster: %w", err)
	}

	updated := 0
	for _, item := range report {
		productName, featureName, err := models.ParseProductFeature(item.ProductFeature)
		if err != nil {
			return 0, NewValidationError("product_feature", err.Error())
		}

		featRow, err := tx.Feature.Query().
			Where(
				feature.Name(featureName),
				feature.HasProductWith(product.Name(productName)),
				feature.HasConfigurationWith(configuration.ClusterID(clusterRow.ID)),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				slog.Warn("Skipping report item for untracked feature",
					"client_id", clientID,
					"product_feature", item.ProductFeature)
				continue
			}
			return 0, fmt.Errorf("failed to resolve feature %s: %w", item.ProductFeature, err)
		}

		used := item.Used
		if used > item.Total {
			slog.Warn("Clamping reported used count to total",
				"client_id", clientID,
				"product_feature", item.ProductFeature,
				"used", item.Used,
				"total", item.Total)
			used = item.Total
		}

		inv, err := featRow.QueryInventory().Only(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to load inventory for %s: %w", item.ProductFeature, err)
		}

		_, err = tx.Inventory.UpdateOneID(inv.ID).
			SetTotal(item.Total).
			SetUsed(used).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to update inventory for %s: %w", item.ProductFeature, err)
		}
		updated++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}
