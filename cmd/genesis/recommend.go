package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genesis-cli/genesis/internal/engine"
	"github.com/genesis-cli/genesis/internal/modes"
)

var (
	recommendFormat      string
	recommendMode        string
	recommendRisk        float64
	recommendSpeed       float64
	recommendTeamSize    int
	recommendTimeline    string
	recommendRegulatory  []string
	recommendScalability string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <concept.json>",
	Short: "Recommend an execution mode for a concept",
	Long: `Analyze a concept and recommend an execution mode with rationale,
validation requirements, timeline estimate, risks, and mitigation
strategies. The decision is recorded for cross-project learning.

Examples:
  genesis recommend my-idea.json
  genesis recommend --risk-tolerance=0.8 --team-size=4 my-idea.json
  genesis recommend --timeline=aggressive --regulatory=GDPR my-idea.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recommendFormat, "format", "human", "Output format (human, json)")
	f.StringVar(&recommendMode, "preferred-mode", "", "Preferred execution mode, if any")
	f.Float64Var(&recommendRisk, "risk-tolerance", -1, "Risk tolerance 0.0-1.0")
	f.Float64Var(&recommendSpeed, "speed-vs-quality", -1, "Speed vs quality 0.0 (quality) - 1.0 (speed)")
	f.IntVar(&recommendTeamSize, "team-size", 0, "Team size")
	f.StringVar(&recommendTimeline, "timeline", "", "Timeline constraint (e.g. aggressive, relaxed)")
	f.StringSliceVar(&recommendRegulatory, "regulatory", nil, "Regulatory requirements")
	f.StringVar(&recommendScalability, "scalability", "", "Scalability requirement (low, moderate, high)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	snap, err := readConcept(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	prefs := cfg.ResolvedPreferences()
	if recommendMode != "" {
		mode := modes.ExecutionMode(recommendMode)
		if err := modes.ValidateMode(mode); err != nil {
			return err
		}
		prefs.PreferredMode = mode
	}
	if recommendRisk >= 0 {
		prefs.RiskTolerance = recommendRisk
	}
	if recommendSpeed >= 0 {
		prefs.SpeedVsQuality = recommendSpeed
	}
	if recommendTeamSize > 0 {
		prefs.TeamSize = recommendTeamSize
	}

	eng := buildEngine(cfg, logger)
	res, err := eng.Recommend(context.Background(), engine.Request{
		Snapshot:    snap,
		Preferences: prefs,
		Constraints: modes.Constraints{
			Timeline:    recommendTimeline,
			Regulatory:  recommendRegulatory,
			Scalability: recommendScalability,
		},
	})
	if err != nil {
		return err
	}

	if recommendFormat == "json" {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printRecommendation(res)
	return nil
}

func printRecommendation(res engine.Result) {
	rec := res.Recommendation

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Recommendation: %s", res.Context.ProjectName)) + "\n\n")

	fmt.Fprintf(&b, "%s %s  %s\n",
		labelStyle.Render("Mode:"),
		modeStyle.Render(string(rec.Mode)),
		labelStyle.Render(fmt.Sprintf("(confidence %.0f%%)", rec.ConfidenceScore*100)))
	fmt.Fprintf(&b, "%s %s\n",
		labelStyle.Render("Complexity:"),
		scoreStyle(res.Analysis.ComplexityScore).Render(
			fmt.Sprintf("%.1f/10 (%s)", res.Analysis.ComplexityScore, res.Analysis.Level())))
	fmt.Fprintf(&b, "%s %s\n\n",
		labelStyle.Render("Timeline:"),
		valueStyle.Render(rec.EstimatedTimeline))

	b.WriteString(valueStyle.Render(rec.Rationale) + "\n")

	if len(rec.Alternatives) > 0 {
		alts := make([]string, len(rec.Alternatives))
		for i, m := range rec.Alternatives {
			alts[i] = string(m)
		}
		fmt.Fprintf(&b, "\n%s %s\n",
			labelStyle.Render("Alternatives:"),
			valueStyle.Render(strings.Join(alts, ", ")))
	}

	if len(rec.IdentifiedRisks) > 0 {
		b.WriteString("\n" + labelStyle.Render("Risks:") + "\n")
		for i, r := range rec.IdentifiedRisks {
			b.WriteString("  " + warnStyle.Render("! ") + valueStyle.Render(r) + "\n")
			if i < len(rec.MitigationStrategies) {
				b.WriteString("    " + labelStyle.Render("> "+rec.MitigationStrategies[i]) + "\n")
			}
		}
	}

	if len(rec.SuccessFactors) > 0 {
		b.WriteString("\n" + labelStyle.Render("Success factors:") + "\n")
		for _, s := range rec.SuccessFactors {
			b.WriteString("  " + valueStyle.Render("- "+s) + "\n")
		}
	}

	if len(rec.RelevantPatterns) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n",
			labelStyle.Render("Historical patterns:"),
			valueStyle.Render(strings.Join(rec.RelevantPatterns, ", ")))
	}

	fmt.Println(panelStyle.Render(strings.TrimRight(b.String(), "\n")))

	if res.DecisionID != "" {
		fmt.Println(labelStyle.Render("Decision recorded: " + res.DecisionID))
		fmt.Println(labelStyle.Render("After the project, report back with: genesis outcome " + res.DecisionID + " --success"))
	}
}
