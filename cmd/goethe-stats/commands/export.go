package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportJSONCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "export-json <file>",
		Short: "Export statistics to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			data, err := mgr.ExportJSON()
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			fmt.Printf("Statistics exported to %s\n", args[0])

			return nil
		},
	}
}

func newExportCSVCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "export-csv <file>",
		Short: "Export statistics to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			data, err := mgr.ExportCSV()
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			fmt.Printf("Statistics exported to %s\n", args[0])

			return nil
		},
	}
}
