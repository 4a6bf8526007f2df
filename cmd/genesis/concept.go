package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genesis-cli/genesis/internal/dialogue"
	"github.com/genesis-cli/genesis/internal/session"
)

var conceptOutput string

var conceptCmd = &cobra.Command{
	Use:   "concept",
	Short: "Develop a concept through collaborative storytelling",
}

var conceptNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Start a new concept development session",
	Long: `Start the three-level concept dialogue: stakeholder story foundation,
challenge stress-testing, and enhancement exploration. Progress is saved
after every answer, so Ctrl-D stops cleanly and 'concept resume' picks
up where you left off.`,
	Args: cobra.ExactArgs(1),
	RunE: runConceptNew,
}

var conceptResumeCmd = &cobra.Command{
	Use:   "resume <session-id>",
	Short: "Resume an interrupted concept session",
	Args:  cobra.ExactArgs(1),
	RunE:  runConceptResume,
}

var conceptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent concept sessions",
	Args:  cobra.NoArgs,
	RunE:  runConceptList,
}

func init() {
	conceptNewCmd.Flags().StringVarP(&conceptOutput, "output", "o", "", "Write the concept JSON to this file (default <name>.json)")
	conceptResumeCmd.Flags().StringVarP(&conceptOutput, "output", "o", "", "Write the concept JSON to this file (default <name>.json)")
	conceptCmd.AddCommand(conceptNewCmd, conceptResumeCmd, conceptListCmd)
	rootCmd.AddCommand(conceptCmd)
}

func runConceptNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	fmt.Print("Describe your concept in a sentence or two:\n> ")
	sc := bufio.NewScanner(os.Stdin)
	var description string
	if sc.Scan() {
		description = strings.TrimSpace(sc.Text())
	}

	state := dialogue.NewState(name, description)
	return runDialogue(state)
}

func runConceptResume(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := session.Open(cfg.ResolvedStorageRoot())
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(args[0])
	if err != nil {
		return err
	}
	state, err := dialogue.Unmarshal(rec.State)
	if err != nil {
		return fmt.Errorf("restoring session state: %w", err)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Resuming %q at level: %s", state.Snapshot.Name, state.LevelName())))
	return runDialogueWith(store, state)
}

func runConceptList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := session.Open(cfg.ResolvedStorageRoot())
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.Recent(20)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println(labelStyle.Render("No concept sessions yet. Start one with: genesis concept new <name>"))
		return nil
	}

	for _, r := range recs {
		status := r.Level
		if r.CompletedAt != nil {
			status = "complete"
		}
		fmt.Printf("%s  %s  %s  %s\n",
			valueStyle.Render(r.ID),
			titleStyle.Render(r.ConceptName),
			labelStyle.Render(status),
			labelStyle.Render(r.UpdatedAt))
	}
	return nil
}

// runDialogue opens the session store and drives the collector.
func runDialogue(state *dialogue.State) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := session.Open(cfg.ResolvedStorageRoot())
	if err != nil {
		return err
	}
	defer store.Close()
	return runDialogueWith(store, state)
}

func runDialogueWith(store *session.Store, state *dialogue.State) error {
	collector := dialogue.NewCollector(os.Stdin, os.Stdout)

	state, runErr := collector.Run(state)

	// Persist whatever was collected, even on error.
	if saveErr := saveSession(store, state); saveErr != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("warning: saving session: %v", saveErr)))
	}
	if runErr != nil {
		return runErr
	}

	if !state.Complete() {
		fmt.Println(warnStyle.Render(fmt.Sprintf(
			"Session saved. Resume with: genesis concept resume %s", state.SessionID)))
		return nil
	}

	if err := store.Complete(state.SessionID); err != nil {
		fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("warning: completing session: %v", err)))
	}

	out := conceptOutput
	if out == "" {
		out = state.Snapshot.Name + ".json"
	}
	data, err := json.MarshalIndent(state.Snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding concept: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing concept: %w", err)
	}
	fmt.Println(titleStyle.Render("Concept written to " + out))
	fmt.Println(labelStyle.Render("Next: genesis recommend " + out))
	return nil
}

func saveSession(store *session.Store, state *dialogue.State) error {
	payload, err := state.Marshal()
	if err != nil {
		return err
	}
	return store.Save(session.Record{
		ID:          state.SessionID,
		ConceptName: state.Snapshot.Name,
		Level:       state.LevelName(),
		State:       payload,
	})
}
