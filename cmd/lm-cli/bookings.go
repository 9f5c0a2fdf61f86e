package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Inspect and release license bookings",
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := listQuery(cmd)
		if err != nil {
			return err
		}
		var bookings []models.Booking
		if err := client.Get(cmd.Context(), "/bookings"+query, &bookings); err != nil {
			return err
		}
		return printJSON(bookings)
	},
}

var bookingsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var booking models.Booking
		if err := client.Get(cmd.Context(), "/bookings/"+args[0], &booking); err != nil {
			return err
		}
		return printJSON(booking)
	},
}

var bookingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Release one booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.Delete(cmd.Context(), "/bookings/"+args[0], nil)
	},
}

var bookingsReleaseJobCmd = &cobra.Command{
	Use:   "release-job <slurm_job_id>",
	Short: "Release every booking a scheduler job holds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slurmJobID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		deleted, err := client.ReleaseJob(cmd.Context(), slurmJobID)
		if err != nil {
			return err
		}
		return printJSON(models.DeletedByJob{Deleted: deleted})
	},
}

func init() {
	addListFlags(bookingsListCmd)
	bookingsCmd.AddCommand(bookingsListCmd, bookingsGetCmd, bookingsDeleteCmd, bookingsReleaseJobCmd)
}
