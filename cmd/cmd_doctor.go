// cmd_doctor.go - Doctor Command
// Hauptfunktionen: DoctorHandler
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/daslaller/flutter-packagemanager-setup/gh"
	"github.com/daslaller/flutter-packagemanager-setup/sysdeps"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment for required tools",
		Args:  cobra.NoArgs,
		RunE:  DoctorHandler,
	}
}

// DoctorHandler - Prueft Plattform, Paket-Manager und benoetigte Werkzeuge
func DoctorHandler(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Printf("os: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if mgr, ok := sysdeps.DetectManager(); ok {
		fmt.Printf("package manager: %s\n", mgr.Name)
	} else {
		fmt.Println("package manager: none detected")
	}
	fmt.Println()

	statuses := sysdeps.Check(ctx, sysdeps.RequiredTools...)

	var data [][]string
	for _, st := range statuses {
		if st.Found {
			data = append(data, []string{st.Name, "ok", st.Version})
		} else {
			hint := st.Hint
			if hint == "" {
				hint = "not found in PATH"
			}
			data = append(data, []string{st.Name, "missing", hint})
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"TOOL", "STATUS", "DETAIL"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	if err := gh.Authenticated(ctx); err != nil {
		fmt.Printf("\ngithub: %v\n", err)
	} else {
		fmt.Println("\ngithub: logged in")
	}

	if len(sysdeps.Missing(statuses)) > 0 {
		return fmt.Errorf("some required tools are missing")
	}
	return nil
}
