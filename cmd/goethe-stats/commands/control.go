package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEnableCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Enable statistics collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			mgr.SetStatisticsEnabled(true)
			fmt.Println("Statistics collection enabled.")

			return nil
		},
	}
}

func newDisableCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Disable statistics collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			mgr.SetStatisticsEnabled(false)
			fmt.Println("Statistics collection disabled.")

			return nil
		},
	}
}

func newResetCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset all statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			mgr.ResetAllStats()
			fmt.Println("All statistics have been reset.")

			return nil
		},
	}
}

func newSwitchCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <backend>",
		Short: "Switch to the specified backend (zstd, null)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := setup()
			if err != nil {
				return err
			}
			defer mgr.Close()

			if !mgr.SwitchBackend(args[0]) {
				return fmt.Errorf("backend %q is unknown or unavailable, kept %q",
					args[0], mgr.BackendName())
			}
			fmt.Printf("Switched to backend: %s\n", mgr.BackendName())

			return nil
		},
	}
}
