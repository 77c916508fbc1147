package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fieldlab/gf2m/pkg/galois"
)

func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the built-in default primitive polynomials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(cmd)
			if err != nil {
				return err
			}

			type fieldInfo struct {
				Degree     int    `json:"degree"`
				Order      int    `json:"order"`
				Polynomial string `json:"polynomial"`
				Exponents  []int  `json:"exponents"`
			}

			var rows []fieldInfo
			for _, m := range galois.DefaultDegrees() {
				p, err := galois.DefaultPoly(m)
				if err != nil {
					return err
				}
				rows = append(rows, fieldInfo{
					Degree:     m,
					Order:      1 << uint(m),
					Polynomial: p.String(),
					Exponents:  p.Exponents(),
				})
			}

			if env.json {
				return writeJSON(env.out, rows)
			}

			headerColor.Fprintln(env.out, "Built-in primitive polynomials")
			fmt.Fprintln(env.out)
			w := tabwriter.NewWriter(env.out, 2, 0, 2, ' ', 0)
			fmt.Fprintln(w, "m\tfield\tpolynomial")
			for _, row := range rows {
				fmt.Fprintf(w, "%d\tGF(%d)\t%s\n", row.Degree, row.Order, row.Polynomial)
			}
			return w.Flush()
		},
	}

	return cmd
}
