package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/planswitch/internal/engine"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached detection results",
	Long: `Manage the files under .cache/ that remember the console code page,
the localized default plan names and whether this is a Lenovo Legion.`,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached detection results",
	Long:  `Delete the cache files. They are rebuilt the next time the plugin runs.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()
		return withEngine(ctx, engineOptions{}, func(eng *engine.Engine) error {
			if err := eng.ClearCache(); err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(w, map[string]bool{"cleared": true})
			}
			PrintSuccess(w, "Cache cleared")
			return nil
		})
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
