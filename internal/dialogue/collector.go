package dialogue

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/genesis-cli/genesis/internal/concept"
)

// Collector runs the prompt loop over an input/output pair. EOF at any
// prompt ends the conversation; the snapshot collected so far is still
// returned so partial work is never lost.
type Collector struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewCollector wraps the given streams. in is typically stdin.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Collector{in: sc, out: out}
}

// Run drives the conversation from wherever state left off until the
// concept is complete or input ends. Callers persist the returned state
// between runs to support resumption.
func (c *Collector) Run(state *State) (*State, error) {
	fmt.Fprintf(c.out, "Developing concept: %s\n", state.Snapshot.Name)
	fmt.Fprintln(c.out, "Three levels: story foundation, stress-testing, enhancement.")
	fmt.Fprintln(c.out, "Enter a blank line to finish a list, Ctrl-D to stop at any point.")

	if state.CurrentLevel == LevelFoundation {
		if err := c.runFoundation(state); err != nil {
			return state, ignoreEOF(err)
		}
		if !state.CanAdvanceToStressTesting() {
			fmt.Fprintf(c.out, "Story foundation incomplete. Need at least %d stakeholder stories.\n", minStories)
			return state, nil
		}
		state.FoundationComplete = true
		state.CurrentLevel = LevelStressTesting
	}

	if state.CurrentLevel == LevelStressTesting {
		fmt.Fprintln(c.out, "\nYour story foundation is solid. Time to stress-test the concept.")
		if err := c.runStressTesting(state); err != nil {
			return state, ignoreEOF(err)
		}
		if !state.CanAdvanceToEnhancement() {
			fmt.Fprintf(c.out, "Stress-testing incomplete. Need at least %d resolved challenges.\n", minChallenges)
			return state, nil
		}
		state.StressTestComplete = true
		state.Snapshot.ValidationLevel = concept.LevelStressTested
		state.CurrentLevel = LevelEnhancement
	}

	if state.CurrentLevel == LevelEnhancement {
		fmt.Fprintln(c.out, "\nConcept validated. Now explore what would make it exceptional.")
		if err := c.runEnhancement(state); err != nil {
			return state, ignoreEOF(err)
		}
		if len(state.Snapshot.Enhancements) < minEnhancements {
			fmt.Fprintln(c.out, "Enhancement incomplete. No enhancements developed.")
			return state, nil
		}
		state.EnhancementComplete = true
		state.Snapshot.ValidationLevel = concept.LevelEnhanced
	}

	state.Touch()
	state.Snapshot.NarrativeConfidence = averageStoryConfidence(state.Snapshot)
	fmt.Fprintf(c.out, "\nConcept %q complete: %d stories, %d challenges, %d enhancements.\n",
		state.Snapshot.Name,
		len(state.Snapshot.Stories), len(state.Snapshot.Challenges), len(state.Snapshot.Enhancements))
	return state, nil
}

func (c *Collector) runFoundation(state *State) error {
	fmt.Fprintln(c.out, "\n-- Level 1: Story Foundation --")
	for len(state.Snapshot.Stories) < minStories {
		story, err := c.collectStory(len(state.Snapshot.Stories) + 1)
		if err != nil {
			return err
		}
		if story == nil {
			return nil
		}
		state.Snapshot.Stories = append(state.Snapshot.Stories, *story)
		state.Touch()
	}

	// Optional extra stories beyond the gate.
	for {
		more, err := c.ask("Add another stakeholder story? (y/N)")
		if err != nil || !isYes(more) {
			return err
		}
		story, err := c.collectStory(len(state.Snapshot.Stories) + 1)
		if err != nil {
			return err
		}
		if story == nil {
			return nil
		}
		state.Snapshot.Stories = append(state.Snapshot.Stories, *story)
		state.Touch()
	}
}

func (c *Collector) collectStory(n int) (*concept.StakeholderStory, error) {
	fmt.Fprintf(c.out, "\nStakeholder story %d\n", n)

	name, err := c.ask("Who is this stakeholder? (name or role)")
	if err != nil || name == "" {
		return nil, err
	}
	stype, err := c.ask("Stakeholder type (primary/secondary/tertiary, default primary)")
	if err != nil {
		return nil, err
	}
	st := concept.StakeholderType(strings.ToLower(stype))
	if concept.ValidateStakeholderType(st) != nil {
		st = concept.TypePrimary
	}

	role, err := c.ask("What is their role or context?")
	if err != nil {
		return nil, err
	}
	situation, err := c.ask("What is their current situation?")
	if err != nil {
		return nil, err
	}
	pains, err := c.askList("Pain points (one per line, blank to finish):")
	if err != nil {
		return nil, err
	}
	experience, err := c.ask("How does their experience change with your concept?")
	if err != nil {
		return nil, err
	}
	value, err := c.ask("What value do they get?")
	if err != nil {
		return nil, err
	}
	indicators, err := c.askList("Success indicators (one per line, blank to finish):")
	if err != nil {
		return nil, err
	}
	conf, err := c.askFloat("How confident are you in this story? (0-1, default 0.8)", 0.8)
	if err != nil {
		return nil, err
	}

	return &concept.StakeholderStory{
		Name:               name,
		Type:               st,
		Role:               role,
		CurrentSituation:   situation,
		PainPoints:         pains,
		Goals:              nil,
		EnhancedExperience: experience,
		ValueDelivered:     value,
		SuccessIndicators:  indicators,
		StoryConfidence:    conf,
	}, nil
}

func (c *Collector) runStressTesting(state *State) error {
	fmt.Fprintln(c.out, "\n-- Level 2: Challenge Stress-Testing --")
	for len(state.Snapshot.Challenges) < minChallenges {
		ch, err := c.collectChallenge(len(state.Snapshot.Challenges) + 1)
		if err != nil {
			return err
		}
		if ch == nil {
			return nil
		}
		state.Snapshot.Challenges = append(state.Snapshot.Challenges, *ch)
		state.Touch()
	}
	return nil
}

func (c *Collector) collectChallenge(n int) (*concept.ChallengeResolution, error) {
	fmt.Fprintf(c.out, "\nChallenge %d\n", n)

	scenario, err := c.ask("Describe a scenario where the concept could fail")
	if err != nil || scenario == "" {
		return nil, err
	}
	affected, err := c.askList("Which stakeholders are affected? (one per line, blank to finish):")
	if err != nil {
		return nil, err
	}
	solution, err := c.ask("How does the concept address this?")
	if err != nil {
		return nil, err
	}
	evolution, err := c.ask("How does the concept evolve because of this challenge?")
	if err != nil {
		return nil, err
	}
	category, err := c.ask("Challenge category (technical/business/social, default business)")
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = "business"
	}

	return &concept.ChallengeResolution{
		Scenario:              scenario,
		AffectedStakeholders:  affected,
		SolutionApproach:      solution,
		ConceptEvolution:      evolution,
		Category:              category,
		ConfidenceImprovement: 0.1,
	}, nil
}

func (c *Collector) runEnhancement(state *State) error {
	fmt.Fprintln(c.out, "\n-- Level 3: Enhancement Exploration --")
	for len(state.Snapshot.Enhancements) < minEnhancements {
		e, err := c.collectEnhancement(len(state.Snapshot.Enhancements) + 1)
		if err != nil {
			return err
		}
		if e == nil {
			return nil
		}
		state.Snapshot.Enhancements = append(state.Snapshot.Enhancements, *e)
		state.Touch()
	}

	more, err := c.ask("Add another enhancement? (y/N)")
	if err != nil || !isYes(more) {
		return err
	}
	e, err := c.collectEnhancement(len(state.Snapshot.Enhancements) + 1)
	if err != nil || e == nil {
		return err
	}
	state.Snapshot.Enhancements = append(state.Snapshot.Enhancements, *e)
	state.Touch()
	return nil
}

func (c *Collector) collectEnhancement(n int) (*concept.Enhancement, error) {
	fmt.Fprintf(c.out, "\nEnhancement %d\n", n)

	etype, err := c.ask("Enhancement type (network_effect/integration/experience/other)")
	if err != nil {
		return nil, err
	}
	if etype == "" {
		etype = "experience"
	}
	description, err := c.ask("Describe the enhancement")
	if err != nil || description == "" {
		return nil, err
	}
	approach, err := c.ask("How would this enhancement actually work?")
	if err != nil {
		return nil, err
	}
	amplification, err := c.ask("How does it amplify stakeholder success?")
	if err != nil {
		return nil, err
	}

	return &concept.Enhancement{
		Type:                   etype,
		Description:            description,
		ImplementationApproach: approach,
		SuccessAmplification:   amplification,
		ImpactScore:            0.8,
		FeasibilityScore:       0.7,
		InnovationLevel:        0.9,
	}, nil
}

// ask prints a prompt and reads one line. io.EOF means the user is
// done; callers treat it as a clean stop.
func (c *Collector) ask(prompt string) (string, error) {
	fmt.Fprintf(c.out, "%s\n> ", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askList reads lines until a blank line.
func (c *Collector) askList(prompt string) ([]string, error) {
	fmt.Fprintln(c.out, prompt)
	var items []string
	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return items, err
			}
			return items, io.EOF
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			return items, nil
		}
		items = append(items, line)
	}
}

// askFloat reads a float in [0,1], falling back to def on blank or
// unparsable input.
func (c *Collector) askFloat(prompt string, def float64) (float64, error) {
	raw, err := c.ask(prompt)
	if err != nil {
		return def, err
	}
	v, perr := strconv.ParseFloat(raw, 64)
	if perr != nil || v < 0.0 || v > 1.0 {
		return def, nil
	}
	return v, nil
}

// ignoreEOF converts a clean end-of-input into a non-error: the caller
// keeps whatever was collected.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func isYes(s string) bool {
	s = strings.ToLower(s)
	return s == "y" || s == "yes"
}

func averageStoryConfidence(snap concept.Snapshot) float64 {
	if len(snap.Stories) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, st := range snap.Stories {
		sum += st.StoryConfidence
	}
	avg := sum / float64(len(snap.Stories))
	for range snap.Challenges {
		avg += 0.05
	}
	if avg > 1.0 {
		avg = 1.0
	}
	return avg
}
