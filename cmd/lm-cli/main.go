// lm-cli is the operator command line for the license-manager ledger.
package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/backend"
	"github.com/hpc-toolchain/license-manager/pkg/version"
)

// client is built once before any subcommand runs.
var client *backend.Client

var rootCmd = &cobra.Command{
	Use:     "lm-cli",
	Short:   "Operator CLI for the license-manager ledger",
	Version: version.Full(),

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		client, err = backend.NewClient(backend.Config{
			BaseURL:      os.Getenv("BACKEND_BASE_URL"),
			AuthDomain:   os.Getenv("AUTH0_DOMAIN"),
			ClientID:     os.Getenv("AUTH0_CLIENT_ID"),
			ClientSecret: os.Getenv("AUTH0_CLIENT_SECRET"),
			Audience:     os.Getenv("AUTH0_AUDIENCE"),
			CacheDir:     os.Getenv("TOKEN_CACHE_DIR"),
		})
		if err != nil {
			return err
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		renderError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(clustersCmd)
	rootCmd.AddCommand(configurationsCmd)
	rootCmd.AddCommand(licenseServersCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(reconcileCmd)
}

// addListFlags registers the common list flags on a list command.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "substring search over the entity's text fields")
	cmd.Flags().String("sort-field", "", "column to sort by")
	cmd.Flags().String("sort-order", "asc", "sort order: asc or desc")
}

// listQuery turns the common list flags into the ledger's query string.
func listQuery(cmd *cobra.Command) (string, error) {
	values := url.Values{}
	if search, _ := cmd.Flags().GetString("search"); search != "" {
		values.Set("search", search)
	}
	if field, _ := cmd.Flags().GetString("sort-field"); field != "" {
		values.Set("sort_field", field)
	}
	switch order, _ := cmd.Flags().GetString("sort-order"); order {
	case "asc":
	case "desc":
		values.Set("sort_ascending", "false")
	default:
		return "", fmt.Errorf("invalid --sort-order: must be asc or desc")
	}
	if len(values) == 0 {
		return "", nil
	}
	return "?" + values.Encode(), nil
}
