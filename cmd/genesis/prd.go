package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genesis-cli/genesis/internal/modes"
	"github.com/genesis-cli/genesis/internal/prd"
)

var (
	prdMode   string
	prdRigor  string
	prdFormat string
	prdOutput string
)

var prdCmd = &cobra.Command{
	Use:   "prd <concept.json>",
	Short: "Generate a story-enhanced PRD from a concept",
	Long: `Generate a product requirements document from a developed concept.
Every requirement traces back to a stakeholder story, a resolved
challenge, or an enhancement.

Examples:
  genesis prd my-idea.json
  genesis prd --mode=knowledge_graph --validation-level=enterprise my-idea.json
  genesis prd --format=json -o my-idea-prd.json my-idea.json`,
	Args: cobra.ExactArgs(1),
	RunE: runPRD,
}

func init() {
	f := prdCmd.Flags()
	f.StringVar(&prdMode, "mode", "hybrid", "Execution mode the PRD targets")
	f.StringVar(&prdRigor, "validation-level", "standard", "Validation rigor (standard, high, enterprise)")
	f.StringVar(&prdFormat, "format", "markdown", "Output format (markdown, json)")
	f.StringVarP(&prdOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(prdCmd)
}

func runPRD(cmd *cobra.Command, args []string) error {
	snap, err := readConcept(args[0])
	if err != nil {
		return err
	}

	mode := modes.ExecutionMode(prdMode)
	if err := modes.ValidateMode(mode); err != nil {
		return err
	}
	rigor := modes.ValidationRigor(prdRigor)
	switch rigor {
	case modes.RigorStandard, modes.RigorHigh, modes.RigorEnterprise:
	default:
		return fmt.Errorf("invalid validation level %q: must be one of: standard, high, enterprise", prdRigor)
	}

	doc := prd.Generate(snap, mode, rigor)

	var rendered string
	switch prdFormat {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		rendered = string(data) + "\n"
	case "markdown":
		md, err := prd.RenderMarkdown(doc)
		if err != nil {
			return fmt.Errorf("rendering PRD: %w", err)
		}
		rendered = md
	default:
		return fmt.Errorf("invalid format %q: must be markdown or json", prdFormat)
	}

	if prdOutput == "" {
		fmt.Print(rendered)
		return nil
	}
	if err := os.WriteFile(prdOutput, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing PRD: %w", err)
	}
	fmt.Println(titleStyle.Render("PRD written to " + prdOutput))
	return nil
}
