package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldlab/gf2m/internal/validation"
)

func NewConjugatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conjugates [element]",
		Short: "Print the conjugate set and minimal polynomial of an element",
		Long: `Print the Frobenius orbit (the element and its repeated squares) and
the minimal polynomial of a single field element. The element can be
given as a power ("a^3" or "3") or a vector ("v:110").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(cmd)
			if err != nil {
				return err
			}
			f, err := env.field(cmd)
			if err != nil {
				return err
			}
			e, err := validation.ParseElement(f, args[0])
			if err != nil {
				return err
			}

			orbit := e.Conjugates()
			names := make([]string, len(orbit))
			for i, c := range orbit {
				names[i] = env.element(c.Power())
			}
			mp := e.MinPoly()

			if env.json {
				return writeJSON(env.out, struct {
					Element    string   `json:"element"`
					Conjugates []string `json:"conjugates"`
					MinPoly    string   `json:"min_poly"`
				}{env.element(e.Power()), names, mp.String()})
			}

			headerColor.Fprintf(env.out, "GF(2^%d), element %s\n\n", f.M(), env.element(e.Power()))
			fmt.Fprintf(env.out, "conjugates:         {%s}\n", strings.Join(names, ", "))
			fmt.Fprintf(env.out, "minimal polynomial: %s\n", mp)
			return nil
		},
	}

	addFieldFlags(cmd)
	return cmd
}
