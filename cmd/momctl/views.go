package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	// dashboard
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the aggregate dashboard view",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/dashboard", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(dashboardCmd)

	// months
	monthsCmd := &cobra.Command{
		Use:   "months",
		Short: "Month archive operations",
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List month buckets, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/months", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	monthsCmd.AddCommand(listCmd)

	exportCmd := &cobra.Command{
		Use:   "export YYYY-MM",
		Short: "Export one month's meetings as a single document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON(fmt.Sprintf("%s/api/exports/months/%s", apiFlag, args[0]), nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	monthsCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(monthsCmd)

	// directory
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "List the user directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/users", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(usersCmd)

	departmentsCmd := &cobra.Command{
		Use:   "departments",
		Short: "List the known departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/departments", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(departmentsCmd)
}
