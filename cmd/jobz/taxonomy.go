package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ianattheGrid/jobz/internal/observability"
	"github.com/ianattheGrid/jobz/internal/taxonomy"
	"github.com/ianattheGrid/jobz/internal/types"
)

var (
	taxonomyJSON bool
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect the work area taxonomy",
}

var taxonomyAreasCmd = &cobra.Command{
	Use:   "areas [work-area]",
	Short: "List work areas, or describe one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTaxonomyAreas,
}

var taxonomyTitlesCmd = &cobra.Command{
	Use:   "titles <specialization>",
	Short: "List the job titles of a specialization",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaxonomyTitles,
}

var taxonomyGapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "List specializations that have no job titles",
	RunE:  runTaxonomyGaps,
}

func init() {
	taxonomyCmd.PersistentFlags().BoolVar(&taxonomyJSON, "json", false, "Write JSON instead of formatted boxes")
	taxonomyCmd.AddCommand(taxonomyAreasCmd, taxonomyTitlesCmd, taxonomyGapsCmd)
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomyAreas(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if taxonomyJSON {
			areas := taxonomy.Areas()
			resp := make([]types.WorkAreaResponse, len(areas))
			for i, a := range areas {
				resp[i] = types.NewWorkAreaResponse(a)
			}
			return writeJSON(out, resp)
		}
		observability.NewPrinter(out).PrintWorkAreas(taxonomy.Areas())
		return nil
	}

	area, err := taxonomy.ParseWorkArea(args[0])
	if err != nil {
		return err
	}
	if taxonomyJSON {
		return writeJSON(out, types.NewWorkAreaResponse(area))
	}
	observability.NewPrinter(out).PrintWorkArea(area)
	return nil
}

func runTaxonomyTitles(cmd *cobra.Command, args []string) error {
	spec, err := taxonomy.ParseSpecialization(args[0])
	if err != nil {
		return err
	}
	titles := taxonomy.TitlesFor(spec)
	if taxonomyJSON {
		return writeJSON(cmd.OutOrStdout(), types.TitlesResponse{Specialization: spec, JobTitles: titles})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTitles(spec, titles)
	return nil
}

func runTaxonomyGaps(cmd *cobra.Command, _ []string) error {
	gaps := taxonomy.Gaps()
	if taxonomyJSON {
		if gaps == nil {
			gaps = []taxonomy.Gap{}
		}
		return writeJSON(cmd.OutOrStdout(), gaps)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintGaps(gaps)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
