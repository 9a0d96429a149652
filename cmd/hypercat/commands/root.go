package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypercat/geom"
	"github.com/katalvlaran/hypercat/newton"
	"github.com/katalvlaran/hypercat/series"
)

// errNotConverged marks a best-effort result: the iteration cap ran out
// before tolerance. The root is still printed; the exit code flags it.
var errNotConverged = errors.New("iteration limit reached before convergence")

// Exit codes; see doc.go.
const (
	exitFailure      = 1
	exitDegenerate   = 2
	exitDivergence   = 3
	exitNotConverged = 4
)

func Execute() error {
	root := &cobra.Command{
		Use:           "hypercat",
		Short:         "Polynomial root solver using the Hyper-Catalan series",
		Long:          "Finds one real root of a univariate polynomial: geometric-form conversion,\nHyper-Catalan series summation, Newton refinement.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(solveCmd())

	return root.Execute()
}

// ExitCode maps an Execute error to the documented process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNotConverged):
		return exitNotConverged
	case errors.Is(err, geom.ErrDegenerateInput):
		return exitDegenerate
	case errors.Is(err, series.ErrSeriesDiverges), errors.Is(err, newton.ErrDerivativeVanished):
		return exitDivergence
	default:
		return exitFailure
	}
}
