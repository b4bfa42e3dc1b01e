package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/keypals/internal/app"
	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/screens/practice"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Open the typing practice screen (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

// runPractice builds the engine and launches the TUI. Logs go to a file
// beside the database while the screen is up.
func runPractice(cmd *cobra.Command) error {
	ctx := cmd.Context()
	age, _ := cmd.Flags().GetInt("age")
	interests, _ := cmd.Flags().GetStringSlice("interest")

	e, err := newEngine(ctx, true)
	if err != nil {
		return err
	}
	defer e.Close()

	templates := catalog.ForAge(age)
	if len(templates) == 0 {
		templates = catalog.All()
	}

	return app.Run(ctx, app.Options{
		Lessons:   e.service,
		Templates: templates,
		Learner:   practice.Learner{Age: age, Interests: interests},
		Live:      e.live,
	})
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, practiceCmd} {
		c.Flags().Int("age", 8, "Learner age, used to pick templates and shape sentences")
		c.Flags().StringSlice("interest", nil, "Learner interest (repeatable)")
	}
}
