package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fieldlab/gf2m/pkg/galois"
)

func NewAddTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addtable",
		Short: "Print the full addition table of the field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCayleyTable(cmd, "+", func(a, b galois.Element) (galois.Element, error) {
				return a.Add(b)
			})
		},
	}

	addFieldFlags(cmd)
	return cmd
}

func NewMulTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multable",
		Short: "Print the full multiplication table of the field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCayleyTable(cmd, "*", func(a, b galois.Element) (galois.Element, error) {
				return a.Mul(b)
			})
		},
	}

	addFieldFlags(cmd)
	return cmd
}

// runCayleyTable prints the (2^m-1) x (2^m-1) operation table over the
// nonzero elements, row and column headed by the element names.
func runCayleyTable(cmd *cobra.Command, opSymbol string, op func(a, b galois.Element) (galois.Element, error)) error {
	env, err := newCommandEnv(cmd)
	if err != nil {
		return err
	}
	f, err := env.field(cmd)
	if err != nil {
		return err
	}

	n := f.Order() - 1
	elems := make([]galois.Element, n)
	names := make([]string, n)
	for i := 0; i < n; i++ {
		elems[i] = galois.NewElement(f, i)
		names[i] = env.element(i)
	}

	grid := make([][]string, n)
	for i, a := range elems {
		grid[i] = make([]string, n)
		for j, b := range elems {
			r, err := op(a, b)
			if err != nil {
				return err
			}
			grid[i][j] = env.element(r.Power())
		}
	}

	if env.json {
		return writeJSON(env.out, struct {
			Op       string     `json:"op"`
			Elements []string   `json:"elements"`
			Table    [][]string `json:"table"`
		}{opSymbol, names, grid})
	}

	headerColor.Fprintf(env.out, "GF(2^%d) %s table (nonzero elements)\n\n", f.M(), opSymbol)
	w := tabwriter.NewWriter(env.out, 2, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s", opSymbol)
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", powerColor.Sprint(name))
	}
	fmt.Fprintln(w)
	for i, name := range names {
		fmt.Fprintf(w, "%s", powerColor.Sprint(name))
		for j := range names {
			fmt.Fprintf(w, "\t%s", grid[i][j])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
