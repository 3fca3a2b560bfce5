package evaluate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestScoringFeatures runs the scoring scenarios via godog.
func TestScoringFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "scoring",
		ScenarioInitializer: initializeScoringScenario,
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{"features"},
			Output:   io.Discard,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("scoring features failed")
	}
}

type scoringState struct {
	keywords []string
	feedback Feedback
}

func initializeScoringScenario(ctx *godog.ScenarioContext) {
	state := &scoringState{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = scoringState{}
		return ctx, nil
	})

	ctx.Step(`^the keywords "([^"]*)"$`, state.theKeywords)
	ctx.Step(`^I answer "([^"]*)"$`, state.iAnswer)
	ctx.Step(`^(\d+) keywords? (?:is|are) covered$`, state.keywordsAreCovered)
	ctx.Step(`^the feedback is "([^"]*)"$`, state.theFeedbackIs)
}

func (s *scoringState) theKeywords(list string) error {
	for _, keyword := range strings.Split(list, ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			s.keywords = append(s.keywords, keyword)
		}
	}
	return nil
}

func (s *scoringState) iAnswer(answer string) error {
	s.feedback = Evaluate(answer, s.keywords)
	return nil
}

func (s *scoringState) keywordsAreCovered(want int) error {
	if got := s.feedback.CoveredCount(); got != want {
		return fmt.Errorf("expected %d covered keywords, got %d (%s)", want, got, s.feedback)
	}
	return nil
}

func (s *scoringState) theFeedbackIs(want string) error {
	if got := s.feedback.String(); got != want {
		return fmt.Errorf("expected feedback %q, got %q", want, got)
	}
	return nil
}
