// config.go - Haupt-Konfigurationsfunktionen fuer flutter-pm
//
// Dieses Modul enthaelt:
// - Gh: Pfad zum GitHub-CLI-Binary (FLUTTER_PM_GH)
// - WorkDir: Clone-Verzeichnis (FLUTTER_PM_WORKDIR)
// - RepoLimit: Maximale Anzahl gelisteter Repositories (FLUTTER_PM_LIMIT)
// - MenuHeight: Sichtbare Zeilen im Auswahl-Menue (FLUTTER_PM_MENU_HEIGHT)
// - Parallel: Anzahl paralleler Clones (FLUTTER_PM_PARALLEL)
// - LogLevel: Log-Level (FLUTTER_PM_DEBUG)
//
// Utility-Funktionen und AsMap sind ausgelagert in config_utils.go.
package envconfig

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Gh gibt das GitHub-CLI-Binary zurueck
// Konfigurierbar via FLUTTER_PM_GH
// Default: "gh" (aus PATH)
func Gh() string {
	if s := Var("FLUTTER_PM_GH"); s != "" {
		return s
	}
	return "gh"
}

// WorkDir gibt das Verzeichnis fuer geklonte Repositories zurueck
// Konfigurierbar via FLUTTER_PM_WORKDIR
// Default: $HOME/.flutter-pm/src
func WorkDir() string {
	if s := Var("FLUTTER_PM_WORKDIR"); s != "" {
		return s
	}

	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	return filepath.Join(home, ".flutter-pm", "src")
}

// RepoLimit gibt die maximale Anzahl gelisteter Repositories zurueck
// Konfigurierbar via FLUTTER_PM_LIMIT
// Default: 100
var RepoLimit = Uint("FLUTTER_PM_LIMIT", 100)

// MenuHeight gibt die Anzahl sichtbarer Menue-Zeilen zurueck
// Konfigurierbar via FLUTTER_PM_MENU_HEIGHT
// Default: 10
var MenuHeight = Uint("FLUTTER_PM_MENU_HEIGHT", 10)

// Parallel gibt die Anzahl gleichzeitiger Clone-Operationen zurueck
// Konfigurierbar via FLUTTER_PM_PARALLEL
// Default: 4
var Parallel = Uint("FLUTTER_PM_PARALLEL", 4)

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via FLUTTER_PM_DEBUG (bool oder Zahl)
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("FLUTTER_PM_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
