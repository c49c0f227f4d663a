// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"errors"
	"log/slog"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daslaller/flutter-packagemanager-setup/envconfig"
)

// Version wird beim Build via ldflags gesetzt
var Version = "0.0.0"

// ErrNothingSelected - Auswahl abgebrochen oder leer bestaetigt.
// main mappt diesen Fehler auf einen eigenen Exit-Code.
var ErrNothingSelected = errors.New("nothing selected")

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += "      " + e.Name + "   " + e.Description + "\n"
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	slog.SetLogLoggerLevel(envconfig.LogLevel())
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "flutter-pm",
		Short:         "Flutter package manager setup",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	// Commands erstellen
	setupCmd := newSetupCmd()
	listCmd := newListCmd()
	doctorCmd := newDoctorCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	appendEnvDocs(setupCmd, []envconfig.EnvVar{
		envVars["FLUTTER_PM_GH"],
		envVars["FLUTTER_PM_WORKDIR"],
		envVars["FLUTTER_PM_LIMIT"],
		envVars["FLUTTER_PM_MENU_HEIGHT"],
		envVars["FLUTTER_PM_PARALLEL"],
	})
	appendEnvDocs(listCmd, []envconfig.EnvVar{
		envVars["FLUTTER_PM_GH"],
		envVars["FLUTTER_PM_LIMIT"],
	})
	appendEnvDocs(doctorCmd, []envconfig.EnvVar{envVars["FLUTTER_PM_GH"]})

	rootCmd.AddCommand(
		setupCmd,
		listCmd,
		doctorCmd,
	)

	return rootCmd
}
