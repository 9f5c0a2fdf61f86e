package main

import (
	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage vendor products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := listQuery(cmd)
		if err != nil {
			return err
		}
		var products []models.Product
		if err := client.Get(cmd.Context(), "/products"+query, &products); err != nil {
			return err
		}
		return printJSON(products)
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var product models.Product
		if err := client.Get(cmd.Context(), "/products/"+args[0], &product); err != nil {
			return err
		}
		return printJSON(product)
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		var product models.Product
		if err := client.Post(cmd.Context(), "/products", map[string]any{"name": name}, &product); err != nil {
			return err
		}
		return printJSON(product)
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		var product models.Product
		if err := client.Put(cmd.Context(), "/products/"+args[0], map[string]any{"name": name}, &product); err != nil {
			return err
		}
		return printJSON(product)
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Delete(cmd.Context(), "/products/"+args[0], nil)
	},
}

func init() {
	addListFlags(productsListCmd)

	productsCreateCmd.Flags().String("name", "", "product name")
	_ = productsCreateCmd.MarkFlagRequired("name")

	productsUpdateCmd.Flags().String("name", "", "product name")
	_ = productsUpdateCmd.MarkFlagRequired("name")

	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsCreateCmd, productsUpdateCmd, productsDeleteCmd)
}
