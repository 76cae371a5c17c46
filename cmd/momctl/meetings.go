package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	meetingsCmd := &cobra.Command{Use: "meetings", Short: "Meeting operations"}

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the merged meeting collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/meetings", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	meetingsCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get MEETING_ID",
		Short: "Get one meeting by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/meetings/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	meetingsCmd.AddCommand(getCmd)

	// create / update from a JSON file or stdin
	var fileFlag string
	upsertCmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create or replace a meeting from a JSON record",
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if fileFlag == "-" || fileFlag == "" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(fileFlag)
			}
			if err != nil {
				return err
			}
			var payload map[string]interface{}
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("record must be a JSON object: %w", err)
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/meetings", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	upsertCmd.Flags().StringVarP(&fileFlag, "file", "f", "-", "Path to the JSON record ('-' for stdin)")
	meetingsCmd.AddCommand(upsertCmd)

	// report
	reportCmd := &cobra.Command{
		Use:   "report MEETING_ID",
		Short: "Print the formatted MoM document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/meetings/%s/report", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	meetingsCmd.AddCommand(reportCmd)

	// mail
	mailCmd := &cobra.Command{
		Use:   "mail MEETING_ID",
		Short: "Print the share-by-mail draft (subject, body, filename)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/meetings/%s/mail", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	meetingsCmd.AddCommand(mailCmd)

	// export
	exportCmd := &cobra.Command{
		Use:   "export MEETING_ID",
		Short: "Export one meeting's document to the export directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doPostJSON(fmt.Sprintf("%s/api/meetings/%s/export", apiFlag, args[0]), nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	meetingsCmd.AddCommand(exportCmd)

	rootCmd.AddCommand(meetingsCmd)
}
