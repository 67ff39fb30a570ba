package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfmengels/elm-lint/pkg/lint"
	"github.com/jfmengels/elm-lint/pkg/rules"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name string `json:"name"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long:  `List every rule registered with this build of elm-lint.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := lint.NewRegistry()
			for _, r := range rules.All() {
				registry.Register(r)
			}

			if format == "json" {
				return writeRulesJSON(cmd, registry.Names())
			}
			return writeRulesText(cmd, registry.Names())
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func writeRulesText(cmd *cobra.Command, names []string) error {
	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func writeRulesJSON(cmd *cobra.Command, names []string) error {
	infos := make([]ruleInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, ruleInfo{Name: name})
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
