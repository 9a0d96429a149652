package commands

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	hypercat "github.com/katalvlaran/hypercat"
	"github.com/katalvlaran/hypercat/exact"
)

func solveCmd() *cobra.Command {
	var (
		tolerance float64
		maxOrder  int
		maxIter   int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Read a polynomial interactively and print one real root",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			degree, err := promptInt(in, out, "Degree of the polynomial: ")
			if err != nil {
				return err
			}
			if degree < 1 {
				return fmt.Errorf("degree must be at least 1, got %d", degree)
			}

			fmt.Fprintf(out, "Coefficients c0..c%d, constant term first.\n", degree)
			coeffs := make([]exact.Number, degree+1)
			for i := 0; i <= degree; i++ {
				f, err := promptFloat(in, out, fmt.Sprintf("c%d: ", i))
				if err != nil {
					return err
				}
				coeffs[i] = exact.Float(f)
			}

			opts := hypercat.DefaultOptions()
			opts.Tolerance = tolerance
			opts.MaxOrder = maxOrder
			opts.MaxIterations = maxIter

			seed, hasSeed, err := promptOptionalFloat(in, out,
				fmt.Sprintf("Newton seed (blank for default %g): ", hypercat.DefaultSeed))
			if err != nil {
				return err
			}
			if hasSeed {
				opts.Seed = seed
			}

			iters, hasIters, err := promptOptionalInt(in, out,
				fmt.Sprintf("Newton iteration cap (blank for default %d): ", opts.MaxIterations))
			if err != nil {
				return err
			}
			if hasIters {
				opts.MaxIterations = iters
			}

			res, err := hypercat.Solve(coeffs, opts)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Root:      %.12g\n", res.Root)
			fmt.Fprintf(out, "Method:    %s\n", res.Method)
			fmt.Fprintf(out, "Residual:  %.3g\n", res.Residual)
			if !res.Converged {
				fmt.Fprintln(out, "Status:    best effort only — tolerance not reached")

				return errNotConverged
			}
			fmt.Fprintln(out, "Status:    converged")

			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", hypercat.DefaultOptions().Tolerance, "convergence tolerance")
	cmd.Flags().IntVar(&maxOrder, "max-order", hypercat.DefaultOptions().MaxOrder, "series truncation cap")
	cmd.Flags().IntVar(&maxIter, "max-iterations", hypercat.DefaultOptions().MaxIterations, "Newton iteration cap")

	return cmd
}

// readLine fetches one trimmed input line after printing the prompt.
func readLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func promptInt(in *bufio.Reader, out io.Writer, prompt string) (int, error) {
	s, err := readLine(in, out, prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}

	return v, nil
}

func promptFloat(in *bufio.Reader, out io.Writer, prompt string) (float64, error) {
	s, err := readLine(in, out, prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}

	return v, nil
}

func promptOptionalFloat(in *bufio.Reader, out io.Writer, prompt string) (float64, bool, error) {
	s, err := readLine(in, out, prompt)
	if err != nil {
		return 0, false, err
	}
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("%q is not a finite number", s)
	}

	return v, true, nil
}

func promptOptionalInt(in *bufio.Reader, out io.Writer, prompt string) (int, bool, error) {
	s, err := readLine(in, out, prompt)
	if err != nil {
		return 0, false, err
	}
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%q is not an integer", s)
	}

	return v, true, nil
}
