package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/keypals/internal/catalog"
	"github.com/abhisek/keypals/internal/lessonplan"
	"github.com/abhisek/keypals/internal/store"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Generate lesson plans and inspect lesson events",
}

var lessonRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate every session of a lesson plan and print it",
	Example: "  keypals lesson run --template space --age 9 --interest rockets\n" +
		"  keypals lesson run --title \"My Ocean Trip\" --sessions 3",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		tmpl, err := templateFromFlags(cmd)
		if err != nil {
			return err
		}
		age, _ := cmd.Flags().GetInt("age")
		interests, _ := cmd.Flags().GetStringSlice("interest")

		e, err := newEngine(ctx, false)
		if err != nil {
			return err
		}
		defer e.Close()
		out := cmd.OutOrStdout()
		if !e.live {
			fmt.Fprintln(out, "No LLM provider configured: sessions come from the built-in library.")
			fmt.Fprintln(out)
		}

		plan, err := e.service.Start(ctx, tmpl, age, interests)
		if err != nil {
			return fmt.Errorf("create plan: %w", err)
		}

		printPlan(out, plan)

		for !plan.Complete() {
			next, sess, err := e.service.Next(ctx, plan)
			if err != nil {
				return fmt.Errorf("session %d: %w", plan.CurrentSession+1, err)
			}
			plan = next
			printSession(out, sess, plan.TotalSessions)
		}
		return nil
	},
}

var lessonEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent lesson plan events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		planID, _ := cmd.Flags().GetString("plan")

		s, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLessonEvents(cmd.Context(), planID, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No lesson events found.")
			return nil
		}

		t := newTable("ID", "Time", "Kind", "Plan", "Session", "Stage", "Level", "Error")
		for _, e := range events {
			session := "-"
			if e.SessionNumber > 0 {
				session = fmt.Sprintf("%d/%d", e.SessionNumber, e.TotalSessions)
			}
			t.Row(strconv.Itoa(e.ID), e.Timestamp.Local().Format(timeLayout), e.Kind,
				truncate(e.PlanID, 8), session, e.Stage, e.Difficulty, e.ErrorMessage)
		}
		printTable(out, t)
		return nil
	},
}

// templateFromFlags resolves --template, or builds a custom template from
// --title and --sessions.
func templateFromFlags(cmd *cobra.Command) (catalog.Template, error) {
	id, _ := cmd.Flags().GetString("template")
	title, _ := cmd.Flags().GetString("title")
	sessions, _ := cmd.Flags().GetInt("sessions")
	age, _ := cmd.Flags().GetInt("age")

	switch {
	case id != "" && title != "":
		return catalog.Template{}, errors.New("use either --template or --title, not both")
	case id != "":
		return catalog.Get(id)
	case title != "":
		return lessonplan.NewCustomTemplate(title, sessions, catalog.AgeRange{Min: age, Max: age})
	default:
		return catalog.Template{}, errors.New("one of --template or --title is required (see `keypals templates`)")
	}
}

func printPlan(w io.Writer, plan *lessonplan.Plan) {
	fmt.Fprintf(w, "%s (%s, %d sessions)\n", plan.Title, plan.Category, plan.TotalSessions)
	fmt.Fprintf(w, "Plan ID: %s\n", plan.ID)
	if plan.Outline != "" {
		fmt.Fprintf(w, "\n%s\n", plan.Outline)
	}
}

func printSession(w io.Writer, s lessonplan.Session, total int) {
	tag := ""
	if s.Fallback {
		tag = "  [built-in]"
	}
	fmt.Fprintf(w, "\n── Session %d/%d · %s · %s · ~%d min%s\n",
		s.Number, total, s.Stage, s.Difficulty, s.EstimatedMinutes, tag)
	if s.Objective != "" {
		fmt.Fprintf(w, "   Goal: %s\n", s.Objective)
	}
	fmt.Fprintln(w)
	for _, line := range s.Lines() {
		fmt.Fprintln(w, "   "+line)
	}
}

func init() {
	lessonRunCmd.Flags().StringP("template", "t", "", "Catalog template ID")
	lessonRunCmd.Flags().String("title", "", "Free-form lesson title (category is inferred)")
	lessonRunCmd.Flags().Int("sessions", 4, "Session count for a custom title")
	lessonRunCmd.Flags().Int("age", 8, "Learner age")
	lessonRunCmd.Flags().StringSlice("interest", nil, "Learner interest (repeatable)")

	lessonEventsCmd.Flags().IntP("limit", "n", 30, "Number of events to show")
	lessonEventsCmd.Flags().String("plan", "", "Only show events for this plan ID")

	lessonCmd.AddCommand(lessonRunCmd)
	lessonCmd.AddCommand(lessonEventsCmd)
}
