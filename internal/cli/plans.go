package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/planswitch/internal/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List power plans",
	Long:  `Display every power plan on this system, including default plans the system does not report.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()
		return withEngine(ctx, engineOptions{}, func(eng *engine.Engine) error {
			result := eng.List(ctx)

			if jsonOutput {
				return outputJSON(w, result)
			}

			if len(result.Plans) == 0 {
				PrintEmptyState(w, "No power plans found")
				return nil
			}

			rows := make([][]string, 0, len(result.Plans))
			highlight := make([]bool, 0, len(result.Plans))
			for _, p := range result.Plans {
				marker := ""
				if p.Active {
					marker = "*"
				}
				rows = append(rows, []string{marker, p.Name, p.ID.String()})
				highlight = append(highlight, p.Active)
			}
			PrintTable(w, []string{" ", "NAME", "GUID"}, rows, highlight)
			return nil
		})
	},
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active power plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()
		return withEngine(ctx, engineOptions{}, func(eng *engine.Engine) error {
			info, err := eng.Active(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(w, info)
			}

			name := info.Name
			if name == "" {
				name = "(unlisted)"
			}
			PrintLabelValue(w, "Name", name)
			PrintLabelValue(w, "GUID", info.ID.String())
			return nil
		})
	},
}

var switchCmd = &cobra.Command{
	Use:   "switch <guid>",
	Short: "Activate a power plan",
	Long: `Activate the power plan with the given GUID and notify activation
observers, such as the Lenovo Legion power LED.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()
		return withEngine(ctx, engineOptions{}, func(eng *engine.Engine) error {
			result, err := eng.Switch(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to switch power plan: %w", err)
			}

			if jsonOutput {
				return outputJSON(w, result)
			}

			name := result.Name
			if name == "" {
				name = result.Plan.String()
			}
			PrintSuccess(w, fmt.Sprintf("Switched to %s", name))
			return nil
		})
	},
}

var queryCmd = &cobra.Command{
	Use:   "query [text...]",
	Short: "Search power plans by name",
	Long:  `Show the launcher results for a search, matching plan names case-insensitively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		w := cmd.OutOrStdout()
		text := strings.Join(args, " ")
		return withEngine(ctx, engineOptions{}, func(eng *engine.Engine) error {
			result := eng.Query(ctx, text)

			if jsonOutput {
				return outputJSON(w, result)
			}

			for _, it := range result.Items {
				if it.Plan == nil {
					PrintWarning(w, it.Title)
					PrintInfo(w, "  "+it.SubTitle)
					continue
				}
				PrintInfo(w, it.Title)
				PrintLabelValue(w, "GUID", it.Plan.ID.String())
			}
			return nil
		})
	},
}
