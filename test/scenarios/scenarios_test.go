//go:build scenarios

// Package scenarios runs the BDD feature suite against the calculation
// engines.
package scenarios

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/pocketbudget/engine/test/scenarios/steps"
)

// TestFeatures runs all BDD feature tests.
func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:    "pretty",
		Paths:     []string{"features"},
		Output:    colors.Colored(os.Stdout),
		Randomize: 0, // Don't randomize for predictable results
		Strict:    true,
		TestingT:  t,
	}

	// Allow tag filtering via environment variable
	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}

	suite := godog.TestSuite{
		Name:                "pocketbudget-engine",
		ScenarioInitializer: steps.InitializeScenario,
		Options:             &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
