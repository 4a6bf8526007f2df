package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genesis-cli/genesis/internal/modes"
)

var (
	patternsScore  float64
	patternsMode   string
	patternsFormat string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Find historical success patterns for a project profile",
	Long: `Search recorded cross-project patterns matching a complexity score
and execution mode. Patterns accumulate as outcomes are reported with
'genesis outcome'.

Examples:
  genesis patterns --score=6.5 --mode=hybrid`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func init() {
	f := patternsCmd.Flags()
	f.Float64Var(&patternsScore, "score", -1, "Complexity score 0.0-10.0 (required)")
	f.StringVar(&patternsMode, "mode", "", "Execution mode (required)")
	f.StringVar(&patternsFormat, "format", "human", "Output format (human, json)")
	patternsCmd.MarkFlagRequired("score")
	patternsCmd.MarkFlagRequired("mode")
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	if patternsScore < 0 || patternsScore > 10 {
		return fmt.Errorf("score must be between 0.0 and 10.0, got %v", patternsScore)
	}
	mode := modes.ExecutionMode(patternsMode)
	if err := modes.ValidateMode(mode); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng := buildEngine(cfg, newLogger(cfg))

	found := eng.FindPatterns(patternsScore, mode)

	if patternsFormat == "json" {
		data, err := json.MarshalIndent(found, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(found) == 0 {
		fmt.Println(labelStyle.Render("No matching patterns recorded yet."))
		return nil
	}

	for _, p := range found {
		var b strings.Builder
		b.WriteString(titleStyle.Render(p.Name) + "\n")
		fmt.Fprintf(&b, "%s %s  %s %s\n",
			labelStyle.Render("Success rate:"),
			valueStyle.Render(fmt.Sprintf("%.0f%%", p.SuccessRate*100)),
			labelStyle.Render("Samples:"),
			valueStyle.Render(fmt.Sprintf("%d", p.SampleSize)))
		if p.Description != "" {
			b.WriteString(valueStyle.Render(p.Description) + "\n")
		}
		if len(p.ImplementationSteps) > 0 {
			b.WriteString(labelStyle.Render("Steps:") + "\n")
			for _, s := range p.ImplementationSteps {
				b.WriteString("  " + valueStyle.Render("- "+s) + "\n")
			}
		}
		if len(p.CommonPitfalls) > 0 {
			b.WriteString(labelStyle.Render("Pitfalls:") + "\n")
			for _, s := range p.CommonPitfalls {
				b.WriteString("  " + warnStyle.Render("! ") + valueStyle.Render(s) + "\n")
			}
		}
		fmt.Println(panelStyle.Render(strings.TrimRight(b.String(), "\n")))
	}
	return nil
}
