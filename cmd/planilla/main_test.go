package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "planilla" {
		t.Errorf("Expected root command use to be 'planilla', got %s", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}
}

func TestSubcommands(t *testing.T) {
	commands := map[string]*cobra.Command{
		"payroll":   payrollCmd(),
		"severance": severanceCmd(),
		"vacation":  vacationCmd(),
		"validate":  validateCmd(),
		"employee":  employeeCmd(),
		"history":   historyCmd(),
		"version":   versionCmd(),
	}

	for name, cmd := range commands {
		if cmd == nil {
			t.Fatalf("Expected %s command to be created", name)
		}
		if cmd.Name() != name {
			t.Errorf("Expected command name %s, got %s", name, cmd.Name())
		}
		if cmd.Short == "" {
			t.Errorf("Expected %s command to have a short description", name)
		}
	}
}

func TestSeveranceCompareFlag(t *testing.T) {
	cmd := severanceCmd()
	if cmd.Flags().Lookup("compare") == nil {
		t.Error("Expected severance command to have a --compare flag")
	}
}

func TestVacationRequiredFlags(t *testing.T) {
	cmd := vacationCmd()
	for _, flag := range []string{"hire", "as-of", "taken"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected vacation command to have a --%s flag", flag)
		}
	}
}

func TestEmployeeSubcommands(t *testing.T) {
	cmd := employeeCmd()
	expected := map[string]bool{"add": false, "list": false, "rm": false}
	for _, sub := range cmd.Commands() {
		if _, ok := expected[sub.Name()]; ok {
			expected[sub.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("Expected employee command to register %s", name)
		}
	}
}
