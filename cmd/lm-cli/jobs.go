package main

import (
	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect scheduler jobs known to the ledger",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := listQuery(cmd)
		if err != nil {
			return err
		}
		var jobs []models.Job
		if err := client.Get(cmd.Context(), "/jobs"+query, &jobs); err != nil {
			return err
		}
		return printJSON(jobs)
	},
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one job with its bookings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var job models.Job
		if err := client.Get(cmd.Context(), "/jobs/"+args[0], &job); err != nil {
			return err
		}
		return printJSON(job)
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a job and its bookings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Delete(cmd.Context(), "/jobs/"+args[0], nil)
	},
}

func init() {
	addListFlags(jobsListCmd)
	jobsCmd.AddCommand(jobsListCmd, jobsGetCmd, jobsDeleteCmd)
}
