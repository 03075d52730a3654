package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"ecotrack_backend/pkg/carbon"

	"github.com/spf13/cobra"
)

type calcOutput struct {
	Footprint           carbon.Footprint   `json:"footprint"`
	SustainabilityScore int                `json:"sustainabilityScore"`
	Equivalent          carbon.Equivalency `json:"equivalent"`
}

func newCalcCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a daily footprint offline from an activity JSON file",
		Long: `Reads an activity record (the same JSON body accepted by POST /api/carbon/preview)
and prints the footprint, sustainability score and equivalencies. Use "-" to read stdin.`,
		Example: `  ecotrack calc --file activity.json
  echo '{"transportation":{"type":"bus","distance":12}}' | ecotrack calc --file -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runCalc(in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "activity JSON file, or - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runCalc(in io.Reader, out io.Writer) error {
	var record carbon.ActivityRecord
	if err := json.NewDecoder(in).Decode(&record); err != nil {
		return fmt.Errorf("decode activity: %w", err)
	}
	if err := carbon.Validate(record); err != nil {
		return err
	}

	footprint := carbon.DailyFootprint(record)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(calcOutput{
		Footprint:           footprint,
		SustainabilityScore: carbon.SustainabilityScore(footprint.TotalEmissions),
		Equivalent:          carbon.Equivalencies(footprint.TotalEmissions),
	})
}
