package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fieldlab/gf2m/internal/validation"
	"github.com/fieldlab/gf2m/pkg/config"
	"github.com/fieldlab/gf2m/pkg/galois"
)

// Role colors shared by the table commands.
var (
	headerColor = color.New(color.FgCyan, color.Bold)
	powerColor  = color.New(color.FgYellow)
	noteColor   = color.New(color.Faint)
)

// commandEnv carries the per-invocation state shared by the commands.
// The configuration file is read once per command run.
type commandEnv struct {
	cfg   *config.Config
	out   io.Writer
	alpha string
	json  bool
}

func newCommandEnv(cmd *cobra.Command) (*commandEnv, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := mgr.Config()

	env := &commandEnv{
		cfg:   cfg,
		out:   cmd.OutOrStdout(),
		alpha: cfg.UI.Alpha,
	}
	env.json, _ = cmd.Flags().GetBool("json")

	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || !cfg.UI.UseColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	return env, nil
}

// addFieldFlags registers the field-selection flags shared by every
// command that needs a constructed field.
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("degree", "m", 0, "Extension degree m of GF(2^m)")
	cmd.Flags().StringP("poly", "p", "", "Primitive polynomial (e.g. \"x^4+x+1\", \"0,1,4\", \"0b10011\")")
	cmd.Flags().Int("order", 0, "Field order 2^m (alternative to --degree)")
}

// field builds the field selected by --degree/--poly/--order, falling
// back to the configuration defaults.
func (env *commandEnv) field(cmd *cobra.Command) (*galois.Field, error) {
	m, err := cmd.Flags().GetInt("degree")
	if err != nil {
		return nil, err
	}
	order, err := cmd.Flags().GetInt("order")
	if err != nil {
		return nil, err
	}
	polySpec, err := cmd.Flags().GetString("poly")
	if err != nil {
		return nil, err
	}

	if m != 0 && order != 0 {
		return nil, fmt.Errorf("--degree and --order are mutually exclusive")
	}
	if order != 0 {
		if order < 2 || order&(order-1) != 0 {
			return nil, fmt.Errorf("--order must be a power of two, got %d", order)
		}
		m = bits.Len(uint(order)) - 1
	}
	if m == 0 {
		m = env.cfg.Defaults.Degree
	}
	if err := validation.ValidateDegree(m); err != nil {
		return nil, err
	}

	var poly galois.Poly
	if polySpec != "" {
		if err := validation.ValidatePolySpec(polySpec); err != nil {
			return nil, err
		}
		if poly, err = galois.ParsePoly(polySpec); err != nil {
			return nil, err
		}
	} else if poly, err = env.cfg.Polynomial(m); err != nil {
		return nil, fmt.Errorf("no polynomial for m=%d: %w (pass one with --poly)", m, err)
	}

	f, err := galois.NewField(m, poly)
	if err != nil {
		return nil, fmt.Errorf("cannot build GF(2^%d) from %s: %w", m, poly, err)
	}
	return f, nil
}

// element renders a field element power for table output using the
// configured alpha symbol: "0", "1" or "a^k".
func (env *commandEnv) element(power int) string {
	switch power {
	case galois.PowerZero:
		return "0"
	case 0:
		return "1"
	default:
		return env.alpha + "^" + strconv.Itoa(power)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// vectorBits renders a coefficient bitmask high-to-low, m digits wide.
func vectorBits(f *galois.Field, vec uint) string {
	return fmt.Sprintf("%0*b", f.M(), vec)
}
