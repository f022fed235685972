package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edward-ap/minislider/internal/sliderapp"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the config and print every slider headlessly",
		Long: `Build every configured slider without opening a window, optionally press
keys on each one, and print the resulting value, accessibility attributes and
encoded form fields.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	checkCmd.Flags().String("keys", "", "comma-separated keys to press on each slider, e.g. End,ArrowDown")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetString("keys")
	keys, err := sliderapp.ParseKeys(list)
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	log, closer := setupLogging(cfg, cmd.ErrOrStderr())
	defer closer.Close()

	return sliderapp.Check(cfg, keys, cmd.OutOrStdout(), log)
}
