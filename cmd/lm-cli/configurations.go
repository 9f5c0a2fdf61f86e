package main

import (
	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var configurationsCmd = &cobra.Command{
	Use:   "configurations",
	Short: "Manage license server configurations",
}

var configurationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configurations",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := listQuery(cmd)
		if err != nil {
			return err
		}
		var configs []models.Configuration
		if err := client.Get(cmd.Context(), "/configurations"+query, &configs); err != nil {
			return err
		}
		return printJSON(configs)
	},
}

var configurationsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one configuration with its license servers and features",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var config models.Configuration
		if err := client.Get(cmd.Context(), "/configurations/"+args[0], &config); err != nil {
			return err
		}
		return printJSON(config)
	},
}

var configurationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		clusterID, _ := cmd.Flags().GetInt("cluster-id")
		graceTime, _ := cmd.Flags().GetInt("grace-time")
		serverType, _ := cmd.Flags().GetString("type")

		body := map[string]any{
			"name":       name,
			"cluster_id": clusterID,
			"grace_time": graceTime,
			"type":       serverType,
		}
		var config models.Configuration
		if err := client.Post(cmd.Context(), "/configurations", body, &config); err != nil {
			return err
		}
		return printJSON(config)
	},
}

var configurationsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			body["name"] = name
		}
		if cmd.Flags().Changed("cluster-id") {
			clusterID, _ := cmd.Flags().GetInt("cluster-id")
			body["cluster_id"] = clusterID
		}
		if cmd.Flags().Changed("grace-time") {
			graceTime, _ := cmd.Flags().GetInt("grace-time")
			body["grace_time"] = graceTime
		}
		if cmd.Flags().Changed("type") {
			serverType, _ := cmd.Flags().GetString("type")
			body["type"] = serverType
		}

		var config models.Configuration
		if err := client.Put(cmd.Context(), "/configurations/"+args[0], body, &config); err != nil {
			return err
		}
		return printJSON(config)
	},
}

var configurationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Delete(cmd.Context(), "/configurations/"+args[0], nil)
	},
}

func init() {
	addListFlags(configurationsListCmd)

	configurationsCreateCmd.Flags().String("name", "", "configuration name")
	configurationsCreateCmd.Flags().Int("cluster-id", 0, "owning cluster id")
	configurationsCreateCmd.Flags().Int("grace-time", 0, "booking grace time in seconds")
	configurationsCreateCmd.Flags().String("type", "", "license server type (flexlm, rlm, lsdyna, lmx, olicense)")
	_ = configurationsCreateCmd.MarkFlagRequired("name")
	_ = configurationsCreateCmd.MarkFlagRequired("cluster-id")
	_ = configurationsCreateCmd.MarkFlagRequired("type")

	configurationsUpdateCmd.Flags().String("name", "", "configuration name")
	configurationsUpdateCmd.Flags().Int("cluster-id", 0, "owning cluster id")
	configurationsUpdateCmd.Flags().Int("grace-time", 0, "booking grace time in seconds")
	configurationsUpdateCmd.Flags().String("type", "", "license server type")

	configurationsCmd.AddCommand(
		configurationsListCmd, configurationsGetCmd, configurationsCreateCmd,
		configurationsUpdateCmd, configurationsDeleteCmd)
}
