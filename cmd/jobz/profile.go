package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ianattheGrid/jobz/internal/observability"
	"github.com/ianattheGrid/jobz/internal/profile"
	"github.com/ianattheGrid/jobz/internal/schemas"
)

var (
	profileSchemaOut string
	profileCheckIn   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Work with candidate profile documents",
}

var profileSchemaCmd = &cobra.Command{
	Use:   "schema <track>",
	Short: "Print the JSON schema of a profile track",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSchema,
}

var profileCheckCmd = &cobra.Command{
	Use:   "check <track>",
	Short: "Check a profile document against its track",
	Long:  "Validates a stored or hand-written profile document against the track schema, then summarizes how complete it is.",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileCheck,
}

func init() {
	profileSchemaCmd.Flags().StringVarP(&profileSchemaOut, "out", "o", "", "Write the schema to this file instead of stdout")
	profileCheckCmd.Flags().StringVarP(&profileCheckIn, "in", "i", "", "Path to profile JSON file (required)")

	if err := profileCheckCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	profileCmd.AddCommand(profileSchemaCmd, profileCheckCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSchema(cmd *cobra.Command, args []string) error {
	tpl, err := templateArg(args[0])
	if err != nil {
		return err
	}

	if profileSchemaOut == "" {
		return writeJSON(cmd.OutOrStdout(), tpl.JSONSchema())
	}

	if dir := filepath.Dir(profileSchemaOut); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(profileSchemaOut)
	if err != nil {
		return fmt.Errorf("failed to create schema file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return writeJSON(f, tpl.JSONSchema())
}

func runProfileCheck(cmd *cobra.Command, args []string) error {
	tpl, err := templateArg(args[0])
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(profileCheckIn)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if err := schemas.ValidateDocument(tpl.JSONSchema(), raw); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			printer.PrintSchemaErrors(validationErr.Errors)
			// exit code 1
			return fmt.Errorf("profile document has %d problem(s)", len(validationErr.Errors))
		}
		return fmt.Errorf("failed to validate profile: %w", err)
	}
	printer.PrintSchemaErrors(nil)

	d, err := tpl.HydrateJSON(raw)
	if err != nil {
		return err
	}
	printer.PrintProfile(d)
	return nil
}

func templateArg(arg string) (*profile.Template, error) {
	track, err := profile.ParseTrack(arg)
	if err != nil {
		return nil, err
	}
	return profile.TemplateFor(track)
}
