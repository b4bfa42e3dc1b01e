package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/keypals/internal/catalog"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in lesson templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetInt("age")

		templates := catalog.All()
		if age > 0 {
			templates = catalog.ForAge(age)
		}
		out := cmd.OutOrStdout()
		if len(templates) == 0 {
			fmt.Fprintln(out, "No templates match.")
			return nil
		}

		t := newTable("ID", "Title", "Category", "Sessions", "Ages", "Description")
		for _, tmpl := range templates {
			t.Row(tmpl.ID, truncate(tmpl.Title, 26), string(tmpl.Category),
				strconv.Itoa(tmpl.SuggestedSessions), tmpl.Ages.String(), tmpl.Description)
		}
		printTable(out, t)
		return nil
	},
}

func init() {
	templatesCmd.Flags().Int("age", 0, "Only show templates suitable for this age")
}
