package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genesis-cli/genesis/internal/analysis"
	"github.com/genesis-cli/genesis/internal/concept"
)

var analyzeFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <concept.json>",
	Short: "Analyze a concept for development complexity",
	Long: `Score a concept document across five complexity dimensions plus
narrative quality metrics. The analysis is deterministic: the same
concept always produces the same scores.

Examples:
  genesis analyze my-idea.json
  genesis analyze --format=json my-idea.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "human", "Output format (human, json)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	snap, err := readConcept(args[0])
	if err != nil {
		return err
	}

	analyzer := analysis.New(analysis.DefaultVocabulary())
	a := analyzer.Analyze(snap)

	if analyzeFormat == "json" {
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Complexity Analysis: %s", snap.Name)) + "\n\n")

	fmt.Fprintf(&b, "%s %s (%s)\n\n",
		labelStyle.Render("Overall:"),
		scoreStyle(a.ComplexityScore).Render(fmt.Sprintf("%.1f/10", a.ComplexityScore)),
		valueStyle.Render(string(a.Level())))

	rows := []struct {
		name  string
		score float64
	}{
		{"Stakeholder", a.StakeholderComplexity},
		{"Technical", a.TechnicalComplexity},
		{"Business", a.BusinessComplexity},
		{"Integration", a.IntegrationComplexity},
		{"Uncertainty", a.UncertaintyLevel},
		{"Story richness", a.StoryRichness},
		{"Narrative coherence", a.NarrativeCoherence},
		{"Stakeholder alignment", a.StakeholderAlignment},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-24s %s\n",
			labelStyle.Render(r.name),
			scoreStyle(r.score).Render(fmt.Sprintf("%.1f", r.score)))
	}

	fmt.Fprintf(&b, "\n%s %s (%s)\n",
		labelStyle.Render("Analysis confidence:"),
		valueStyle.Render(fmt.Sprintf("%.0f%%", a.AnalysisConfidence*100)),
		valueStyle.Render(string(a.ConfidenceLevel())))

	if len(a.RiskFactors) > 0 {
		b.WriteString("\n" + labelStyle.Render("Risk factors:") + "\n")
		for _, r := range a.RiskFactors {
			b.WriteString("  " + warnStyle.Render("! ") + valueStyle.Render(r) + "\n")
		}
	}

	fmt.Println(panelStyle.Render(strings.TrimRight(b.String(), "\n")))
	return nil
}

// readConcept loads and validates a concept JSON file.
func readConcept(path string) (concept.Snapshot, error) {
	var snap concept.Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, fmt.Errorf("reading concept: %w", err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("parsing concept: %w", err)
	}
	if snap.Name == "" {
		return snap, fmt.Errorf("concept %s has no name", path)
	}
	return snap, nil
}
