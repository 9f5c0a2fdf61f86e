package main

import (
	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Manage licensed features and their inventories",
}

var featuresListCmd = &cobra.Command{
	Use:   "list",
	Short: "List features",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := listQuery(cmd)
		if err != nil {
			return err
		}
		var features []models.Feature
		if err := client.Get(cmd.Context(), "/features"+query, &features); err != nil {
			return err
		}
		return printJSON(features)
	},
}

var featuresGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one feature with its product and inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var feature models.Feature
		if err := client.Get(cmd.Context(), "/features/"+args[0], &feature); err != nil {
			return err
		}
		return printJSON(feature)
	},
}

var featuresCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a feature (inventory starts at zero)",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		productID, _ := cmd.Flags().GetInt("product-id")
		configID, _ := cmd.Flags().GetInt("config-id")
		reserved, _ := cmd.Flags().GetInt("reserved")

		body := map[string]any{
			"name":       name,
			"product_id": productID,
			"config_id":  configID,
			"reserved":   reserved,
		}
		var feature models.Feature
		if err := client.Post(cmd.Context(), "/features", body, &feature); err != nil {
			return err
		}
		return printJSON(feature)
	},
}

var featuresUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a feature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			body["name"] = name
		}
		if cmd.Flags().Changed("product-id") {
			productID, _ := cmd.Flags().GetInt("product-id")
			body["product_id"] = productID
		}
		if cmd.Flags().Changed("config-id") {
			configID, _ := cmd.Flags().GetInt("config-id")
			body["config_id"] = configID
		}
		if cmd.Flags().Changed("reserved") {
			reserved, _ := cmd.Flags().GetInt("reserved")
			body["reserved"] = reserved
		}

		var feature models.Feature
		if err := client.Put(cmd.Context(), "/features/"+args[0], body, &feature); err != nil {
			return err
		}
		return printJSON(feature)
	},
}

var featuresUpdateInventoryCmd = &cobra.Command{
	Use:   "update-inventory <id>",
	Short: "Override a feature's token counts directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		if cmd.Flags().Changed("total") {
			total, _ := cmd.Flags().GetInt("total")
			body["total"] = total
		}
		if cmd.Flags().Changed("used") {
			used, _ := cmd.Flags().GetInt("used")
			body["used"] = used
		}

		var feature models.Feature
		if err := client.Put(cmd.Context(), "/features/"+args[0]+"/update_inventory", body, &feature); err != nil {
			return err
		}
		return printJSON(feature)
	},
}

var featuresDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a feature and its inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Delete(cmd.Context(), "/features/"+args[0], nil)
	},
}

func init() {
	addListFlags(featuresListCmd)

	featuresCreateCmd.Flags().String("name", "", "feature name")
	featuresCreateCmd.Flags().Int("product-id", 0, "owning product id")
	featuresCreateCmd.Flags().Int("config-id", 0, "owning configuration id")
	featuresCreateCmd.Flags().Int("reserved", 0, "tokens held back from booking")
	_ = featuresCreateCmd.MarkFlagRequired("name")
	_ = featuresCreateCmd.MarkFlagRequired("product-id")
	_ = featuresCreateCmd.MarkFlagRequired("config-id")

	featuresUpdateCmd.Flags().String("name", "", "feature name")
	featuresUpdateCmd.Flags().Int("product-id", 0, "owning product id")
	featuresUpdateCmd.Flags().Int("config-id", 0, "owning configuration id")
	featuresUpdateCmd.Flags().Int("reserved", 0, "tokens held back from booking")

	featuresUpdateInventoryCmd.Flags().Int("total", 0, "licensed total")
	featuresUpdateInventoryCmd.Flags().Int("used", 0, "tokens in use")

	featuresCmd.AddCommand(
		featuresListCmd, featuresGetCmd, featuresCreateCmd,
		featuresUpdateCmd, featuresUpdateInventoryCmd, featuresDeleteCmd)
}
