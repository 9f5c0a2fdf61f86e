package main

import (
	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var licenseServersCmd = &cobra.Command{
	Use:   "license-servers",
	Short: "Manage vendor license server endpoints",
}

var licenseServersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List license servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := listQuery(cmd)
		if err != nil {
			return err
		}
		var servers []models.LicenseServer
		if err := client.Get(cmd.Context(), "/license_servers"+query, &servers); err != nil {
			return err
		}
		return printJSON(servers)
	},
}

var licenseServersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one license server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var server models.LicenseServer
		if err := client.Get(cmd.Context(), "/license_servers/"+args[0], &server); err != nil {
			return err
		}
		return printJSON(server)
	},
}

var licenseServersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a license server",
	RunE: func(cmd *cobra.Command, args []string) error {
		configID, _ := cmd.Flags().GetInt("config-id")
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")

		body := map[string]any{"config_id": configID, "host": host, "port": port}
		var server models.LicenseServer
		if err := client.Post(cmd.Context(), "/license_servers", body, &server); err != nil {
			return err
		}
		return printJSON(server)
	},
}

var licenseServersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a license server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		if cmd.Flags().Changed("config-id") {
			configID, _ := cmd.Flags().GetInt("config-id")
			body["config_id"] = configID
		}
		if cmd.Flags().Changed("host") {
			host, _ := cmd.Flags().GetString("host")
			body["host"] = host
		}
		if cmd.Flags().Changed("port") {
			port, _ := cmd.Flags().GetInt("port")
			body["port"] = port
		}

		var server models.LicenseServer
		if err := client.Put(cmd.Context(), "/license_servers/"+args[0], body, &server); err != nil {
			return err
		}
		return printJSON(server)
	},
}

var licenseServersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a license server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Delete(cmd.Context(), "/license_servers/"+args[0], nil)
	},
}

func init() {
	addListFlags(licenseServersListCmd)

	licenseServersCreateCmd.Flags().Int("config-id", 0, "owning configuration id")
	licenseServersCreateCmd.Flags().String("host", "", "license server host")
	licenseServersCreateCmd.Flags().Int("port", 0, "license server port")
	_ = licenseServersCreateCmd.MarkFlagRequired("config-id")
	_ = licenseServersCreateCmd.MarkFlagRequired("host")
	_ = licenseServersCreateCmd.MarkFlagRequired("port")

	licenseServersUpdateCmd.Flags().Int("config-id", 0, "owning configuration id")
	licenseServersUpdateCmd.Flags().String("host", "", "license server host")
	licenseServersUpdateCmd.Flags().Int("port", 0, "license server port")

	licenseServersCmd.AddCommand(
		licenseServersListCmd, licenseServersGetCmd, licenseServersCreateCmd,
		licenseServersUpdateCmd, licenseServersDeleteCmd)
}
