package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// minPolyRow is the JSON shape of one minimal-polynomial table row.
type minPolyRow struct {
	Representative int    `json:"representative"`
	Conjugates     []int  `json:"conjugates"`
	Polynomial     string `json:"polynomial"`
	Coefficients   string `json:"coefficients"` // highest degree first
}

func NewMinPolyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minpoly",
		Short: "Print the minimal-polynomial table",
		Long: `Print one row per conjugacy class of the nonzero field elements:
the smallest power in the class, the full conjugate set, and the class's
minimal polynomial over GF(2). This is the layout of Appendix B of
Lin and Costello, "Error Control Coding".`,
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

			rows := make([]minPolyRow, 0, f.Order()/f.M()+1)
			for _, row := range f.MinPolyTable() {
				rows = append(rows, minPolyRow{
					Representative: row.Rep,
					Conjugates:     row.Conjugates,
					Polynomial:     row.Poly.String(),
					Coefficients:   row.Poly.Bits(row.Poly.Degree() + 1),
				})
			}

			if env.json {
				return writeJSON(env.out, rows)
			}

			headerColor.Fprintf(env.out, "Minimal polynomials of GF(2^%d), primitive polynomial %s\n\n", f.M(), f.Polynomial())
			w := tabwriter.NewWriter(env.out, 2, 0, 2, ' ', 0)
			fmt.Fprintln(w, "root\tconjugates\tminimal polynomial\tcoefficients")
			for _, row := range rows {
				conj := make([]string, len(row.Conjugates))
				for i, c := range row.Conjugates {
					conj[i] = env.element(c)
				}
				fmt.Fprintf(w, "%s\t{%s}\t%s\t%s\n",
					powerColor.Sprint(env.element(row.Representative)),
					strings.Join(conj, ", "),
					row.Polynomial,
					row.Coefficients,
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(env.out)
			noteColor.Fprintln(env.out, "coefficients are listed highest degree first")
			return nil
		},
	}

	addFieldFlags(cmd)
	return cmd
}
