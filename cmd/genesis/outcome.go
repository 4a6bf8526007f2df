package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genesis-cli/genesis/internal/decisions"
)

var (
	outcomeSuccess bool
	outcomeMetrics []string
	outcomeLessons []string
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome <decision-id>",
	Short: "Record how a recommended project turned out",
	Long: `Report the outcome of a past recommendation so future
recommendations can learn from it. Each decision accepts exactly one
outcome; re-reporting is rejected.

Examples:
  genesis outcome 3f6c... --success
  genesis outcome 3f6c... --success --metric=quality=0.9 --lesson="Start validation earlier"`,
	Args: cobra.ExactArgs(1),
	RunE: runOutcome,
}

func init() {
	f := outcomeCmd.Flags()
	f.BoolVar(&outcomeSuccess, "success", false, "Whether the project succeeded")
	f.StringArrayVar(&outcomeMetrics, "metric", nil, "Success metric as name=value (repeatable)")
	f.StringArrayVar(&outcomeLessons, "lesson", nil, "Lesson learned (repeatable)")
	rootCmd.AddCommand(outcomeCmd)
}

func runOutcome(cmd *cobra.Command, args []string) error {
	metrics, err := parseMetrics(outcomeMetrics)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng := buildEngine(cfg, newLogger(cfg))

	d, err := eng.RecordOutcome(context.Background(), args[0], decisions.Outcome{
		Success:        outcomeSuccess,
		SuccessMetrics: metrics,
		LessonsLearned: outcomeLessons,
	})
	if err != nil {
		return err
	}

	status := "succeeded"
	if !outcomeSuccess {
		status = "did not succeed"
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("Outcome recorded: %s %s", d.Context.ProjectName, status)))
	fmt.Println(labelStyle.Render(fmt.Sprintf("Mode used: %s, decided %s", d.UserChoice, d.DecidedAt)))
	return nil
}

func parseMetrics(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	m := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid metric %q: expected name=value", pair)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid metric value in %q: %v", pair, err)
		}
		m[name] = v
	}
	return m, nil
}
