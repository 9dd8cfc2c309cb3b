// copulafit reads whitespace-separated x y pairs from stdin, one
// pair per line, fits a copula to them, and describes the fitted
// dependence.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/copula"
	"github.com/USArmy-Corps-of-Engineers-RMC/Numerics-sub014/dist"
)

var (
	family  = flag.String("family", "gumbel", "copula family: gumbel, clayton, frank, joe, amh, or normal")
	method  = flag.String("method", "pseudo", "estimation method: pseudo, ifm, or full")
	marginX = flag.String("xmargin", "normal", "x marginal family for ifm and full")
	marginY = flag.String("ymargin", "normal", "y marginal family for ifm and full")
)

func main() {
	flag.Parse()

	f, err := copula.ParseFamily(*family)
	if err != nil {
		fatal(err)
	}
	c, err := copula.New(f, 0)
	if err != nil {
		fatal(err)
	}

	var m copula.Method
	switch *method {
	case "pseudo":
		m = copula.PseudoLikelihood
	case "ifm":
		m = copula.InferenceFromMargins
	case "full":
		m = copula.FullLikelihood
	default:
		fatal(fmt.Errorf("unknown method %q", *method))
	}
	if m != copula.PseudoLikelihood {
		mx, err := newMargin(*marginX)
		if err != nil {
			fatal(err)
		}
		my, err := newMargin(*marginY)
		if err != nil {
			fatal(err)
		}
		c.SetMargins(mx, my)
	}

	xs, ys := readInput(os.Stdin)
	if err := copula.Estimate(c, xs, ys, m); err != nil {
		fatal(err)
	}

	us := copula.PseudoObservations(xs)
	vs := copula.PseudoObservations(ys)
	fmt.Printf("N %d  sample tau %.6g\n", len(xs), stat.Kendall(us, vs, nil))
	fmt.Printf("%s  theta %.6g  tau %.6g  log-likelihood %.6g\n",
		c.Family(), c.Theta(), c.Tau(), copula.LogLikelihood(c, us, vs))
	if mx, my := c.Margins(); mx != nil && my != nil {
		fmt.Printf("x margin %s %v\n", mx.Family(), mx.Params())
		fmt.Printf("y margin %s %v\n", my.Family(), my.Params())
	}
}

// newMargin builds a marginal distribution with placeholder
// parameters; estimation replaces them.
func newMargin(name string) (dist.Continuous, error) {
	f, err := dist.ParseFamily(name)
	if err != nil {
		return nil, err
	}
	switch f {
	case dist.FamilyNormal:
		return dist.NewNormal(0, 1), nil
	case dist.FamilyUniform:
		return dist.NewUniform(0, 1), nil
	case dist.FamilyTriangular:
		return dist.NewTriangular(0, 0.5, 1), nil
	case dist.FamilyExponential:
		return dist.NewExponential(1), nil
	case dist.FamilyWeibull:
		return dist.NewWeibull(1, 1), nil
	case dist.FamilyGEV:
		return dist.NewGEV(0, 1, 0), nil
	}
	return nil, fmt.Errorf("unknown marginal family %q", name)
}

func readInput(r io.Reader) (xs, ys []float64) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			fatal(fmt.Errorf("line %d: want two values, got %d", line, len(fields)))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			fatal(fmt.Errorf("line %d: %v", line, err))
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			fatal(fmt.Errorf("line %d: %v", line, err))
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err := scanner.Err(); err != nil {
		fatal(err)
	}
	return
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
