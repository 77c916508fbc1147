package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// powerRow is the JSON shape of one power-table row. Power is null for
// the zero element, which has no finite exponent.
type powerRow struct {
	Power   *int   `json:"power"`
	Element string `json:"element"`
	Vector  string `json:"vector"`
}

func NewPowersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "powers",
		Short: "Print the power/vector correspondence table",
		Long: `Print the table mapping each power of the primitive element to its
vector representation (coefficient bits, highest degree first).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(cmd)
			if err != nil {
				return err
			}
			f, err := env.field(cmd)
			if err != nil {
				return err
			}

			rows := make([]powerRow, 0, f.Order())
			rows = append(rows, powerRow{
				Element: "0",
				Vector:  vectorBits(f, 0),
			})
			for power := 0; power < f.Order()-1; power++ {
				power := power
				vec, err := f.ToVector(power)
				if err != nil {
					return err
				}
				rows = append(rows, powerRow{
					Power:   &power,
					Element: env.element(power),
					Vector:  vectorBits(f, vec),
				})
			}

			if env.json {
				return writeJSON(env.out, rows)
			}

			headerColor.Fprintf(env.out, "GF(2^%d), primitive polynomial %s\n\n", f.M(), f.Polynomial())
			w := tabwriter.NewWriter(env.out, 2, 0, 2, ' ', 0)
			fmt.Fprintln(w, "power\telement\tvector")
			for _, row := range rows {
				if row.Power == nil {
					fmt.Fprintf(w, "-\t%s\t%s\n", row.Element, row.Vector)
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", *row.Power, powerColor.Sprint(row.Element), row.Vector)
			}
			return w.Flush()
		},
	}

	addFieldFlags(cmd)
	return cmd
}
