package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fieldlab/gf2m/internal/validation"
	"github.com/fieldlab/gf2m/pkg/galois"
)

func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [op] [a] [b]",
		Short: "Evaluate a field operation on one or two elements",
		Long: `Evaluate add, sub, mul, div, inv or exp on field elements.

Elements are given as powers ("a^3" or "3") or vectors ("v:110");
"zero" names the zero element. inv takes one element; exp takes an
element and an integer exponent.

Examples:
  gf2m eval mul a^3 a^5 -m 3
  gf2m eval add v:011 v:110 -m 3
  gf2m eval inv a^3 -m 3
  gf2m eval exp a^3 2 -m 4`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newCommandEnv(cmd)
			if err != nil {
				return err
			}
			f, err := env.field(cmd)
			if err != nil {
				return err
			}

			op := args[0]
			a, err := validation.ParseElement(f, args[1])
			if err != nil {
				return fmt.Errorf("operand a: %w", err)
			}

			var result galois.Element
			switch op {
			case "inv":
				if len(args) != 2 {
					return fmt.Errorf("inv takes exactly one operand")
				}
				if result, err = a.Inv(); err != nil {
					return err
				}
			case "exp":
				if len(args) != 3 {
					return fmt.Errorf("exp takes an element and an integer exponent")
				}
				k, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("exponent %q is not an integer", args[2])
				}
				result = a.Exp(k)
			case "add", "sub", "mul", "div":
				if len(args) != 3 {
					return fmt.Errorf("%s takes two operands", op)
				}
				b, err := validation.ParseElement(f, args[2])
				if err != nil {
					return fmt.Errorf("operand b: %w", err)
				}
				switch op {
				case "add":
					result, err = a.Add(b)
				case "sub":
					result, err = a.Sub(b)
				case "mul":
					result, err = a.Mul(b)
				case "div":
					result, err = a.Div(b)
				}
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown operation %q (want add, sub, mul, div, inv or exp)", op)
			}

			if env.json {
				var power *int
				if !result.IsZero() {
					p := result.Power()
					power = &p
				}
				return writeJSON(env.out, struct {
					Element string `json:"element"`
					Power   *int   `json:"power"`
					Vector  string `json:"vector"`
				}{env.element(result.Power()), power, vectorBits(f, result.Vector())})
			}

			fmt.Fprintf(env.out, "%s  (vector %s)\n",
				powerColor.Sprint(env.element(result.Power())),
				vectorBits(f, result.Vector()))
			return nil
		},
	}

	addFieldFlags(cmd)
	return cmd
}
