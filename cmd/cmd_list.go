// cmd_list.go - List Command
// Hauptfunktionen: ListHandler
package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/daslaller/flutter-packagemanager-setup/envconfig"
	"github.com/daslaller/flutter-packagemanager-setup/gh"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List your GitHub repositories",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE:    ListHandler,
	}
}

// ListHandler - Listet die GitHub-Repositories des Benutzers auf
func ListHandler(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := gh.Authenticated(ctx); err != nil {
		return err
	}

	repos, err := gh.ListRepos(ctx, envconfig.RepoLimit())
	if err != nil {
		return err
	}

	var data [][]string
	for _, r := range repos {
		visibility := "public"
		if r.IsPrivate {
			visibility = "private"
		}
		data = append(data, []string{r.FullName(), visibility, humanTime(r.UpdatedAt), r.Description})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"NAME", "VISIBILITY", "UPDATED", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

// humanTime formatiert einen Zeitpunkt als grobes relatives Alter.
func humanTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + " minutes ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + " hours ago"
	case d < 30*24*time.Hour:
		return strconv.Itoa(int(d.Hours()/24)) + " days ago"
	case d < 365*24*time.Hour:
		return strconv.Itoa(int(d.Hours()/24/30)) + " months ago"
	}
	return strconv.Itoa(int(d.Hours()/24/365)) + " years ago"
}
