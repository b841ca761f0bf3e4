package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seisgrad/sensitivity"
)

// TableRow is one entry of the selection table.
type TableRow struct {
	Frequencies bool   `json:"frequencies"`
	ISIC        bool   `json:"isic"`
	Condition   string `json:"condition"`
	Source      string `json:"source"`
}

// TableResult lists every selection.
type TableResult struct {
	Rows []TableRow `json:"rows"`
}

// WriteText renders an aligned table.
func (r TableResult) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-11s %-5s %-10s %s\n", "frequencies", "isic", "condition", "source"); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(w, "%-11t %-5t %-10s %s\n", row.Frequencies, row.ISIC, row.Condition, row.Source); err != nil {
			return err
		}
	}

	return nil
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the imaging-condition and source selection table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newFormatter(rootOpts, cmd.OutOrStdout()).Success(selectionTable())
		},
	}
}

func selectionTable() TableResult {
	var res TableResult
	for _, hasFreq := range []bool{false, true} {
		for _, isic := range []bool{false, true} {
			res.Rows = append(res.Rows, TableRow{
				Frequencies: hasFreq,
				ISIC:        isic,
				Condition:   sensitivity.SelectImagingCondition(hasFreq, isic).String(),
				Source:      sensitivity.SelectSourceFormula(isic).String(),
			})
		}
	}

	return res
}
