package main

import (
	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Manage workload clusters",
}

var clustersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clusters",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := listQuery(cmd)
		if err != nil {
			return err
		}
		var clusters []models.Cluster
		if err := client.Get(cmd.Context(), "/clusters"+query, &clusters); err != nil {
			return err
		}
		return printJSON(clusters)
	},
}

var clustersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one cluster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cluster models.Cluster
		if err := client.Get(cmd.Context(), "/clusters/"+args[0], &cluster); err != nil {
			return err
		}
		return printJSON(cluster)
	},
}

var clustersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		clientID, _ := cmd.Flags().GetString("client-id")

		var cluster models.Cluster
		body := map[string]any{"name": name, "client_id": clientID}
		if err := client.Post(cmd.Context(), "/clusters", body, &cluster); err != nil {
			return err
		}
		return printJSON(cluster)
	},
}

var clustersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a cluster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			body["name"] = name
		}
		if cmd.Flags().Changed("client-id") {
			clientID, _ := cmd.Flags().GetString("client-id")
			body["client_id"] = clientID
		}

		var cluster models.Cluster
		if err := client.Put(cmd.Context(), "/clusters/"+args[0], body, &cluster); err != nil {
			return err
		}
		return printJSON(cluster)
	},
}

var clustersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a cluster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Delete(cmd.Context(), "/clusters/"+args[0], nil)
	},
}

func init() {
	addListFlags(clustersListCmd)

	clustersCreateCmd.Flags().String("name", "", "cluster name")
	clustersCreateCmd.Flags().String("client-id", "", "auth client id of the cluster's agent")
	_ = clustersCreateCmd.MarkFlagRequired("name")
	_ = clustersCreateCmd.MarkFlagRequired("client-id")

	clustersUpdateCmd.Flags().String("name", "", "cluster name")
	clustersUpdateCmd.Flags().String("client-id", "", "auth client id of the cluster's agent")

	clustersCmd.AddCommand(clustersListCmd, clustersGetCmd, clustersCreateCmd, clustersUpdateCmd, clustersDeleteCmd)
}
