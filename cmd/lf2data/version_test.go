package main

import (
	"testing"
)

func TestVersionCommandExists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}

	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}

	if versionCmd.Short == "" {
		t.Error("versionCmd.Short should not be empty")
	}

	if versionCmd.Run == nil {
		t.Error("versionCmd.Run should not be nil")
	}
}

func TestRootCommandWiring(t *testing.T) {
	wanted := map[string]bool{
		"parse":      false,
		"lint":       false,
		"scan":       false,
		"catalog":    false,
		"version":    false,
		"completion": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := wanted[cmd.Name()]; ok {
			wanted[cmd.Name()] = true
		}
	}

	for name, found := range wanted {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
