// Command plotdemo runs small instrumented loops and writes the
// resulting charts. Each subcommand shows one way of using the plot
// package; output lands under plots/ unless PLOT_DIR or a
// debugplotter.yaml says otherwise.
package main

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/fabianboesiger/debug-plotter/src/plot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "plotdemo",
		Short: "Demo loops for the debug plotter",
		Long: `plotdemo runs small instrumented loops and renders each call
site's samples as a line chart at exit. Charts are written under
plots/ by default; set PLOT_DIR or drop a debugplotter.yaml next to
the binary to change that.`,
		SilenceUsage: true,
	}
	root.AddCommand(newTuplesCmd())
	root.AddCommand(newRenamingCmd())
	root.AddCommand(newOptionsCmd())
	root.AddCommand(newWindowCmd())
	root.AddCommand(newMultiCmd())
	return root
}

func newTuplesCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "tuples",
		Short: "Plot sin and cos over one period as explicit (x, y) pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < steps; i++ {
				x := float64(i) / float64(steps) * 2 * math.Pi
				plot.Plot(
					plot.XY("sin(x)", x, math.Sin(x)),
					plot.XY("cos(x)", x, math.Cos(x)),
					plot.Caption("Trigonometry"),
					plot.XLabel("x"),
				)
			}
			return plot.Flush()
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 100, "samples per period")
	return cmd
}

func newRenamingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renaming",
		Short: "Plot three renamed counters against the iteration index",
		RunE: func(cmd *cobra.Command, args []string) error {
			for a := 0; a < 10; a++ {
				b := math.Sin(float64(a)/2) * 10
				c := 5 - a
				plot.Plot(
					plot.Value("Alice", a),
					plot.Value("Bob", b),
					plot.Value("Charlie", c),
					plot.Caption("Renaming"),
				)
			}
			return plot.Flush()
		},
	}
}

func newOptionsCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Pin caption, size, ranges and output path explicitly",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < steps; i++ {
				plot.Plot(
					plot.Value("i", i),
					plot.Caption("Options"),
					plot.Size(400, 300),
					plot.XLabel("X Description"),
					plot.YLabel("Y Description"),
					plot.XRange(0, 500),
					plot.YRange(0, 500),
					plot.Path(filepath.Join("plots", "Options.png")),
				)
			}
			return plot.Flush()
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1000, "number of samples")
	return cmd
}

func newWindowCmd() *cobra.Command {
	var (
		steps  int
		window int
	)
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Keep only the most recent samples of a noisy signal",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := rand.New(rand.NewSource(1))
			for i := 0; i < steps; i++ {
				y := math.Sin(float64(i)/25) + r.Float64()*0.2
				plot.Plot(
					plot.Value("signal", y),
					plot.Caption("Sliding Window"),
					plot.Window(window),
				)
			}
			return plot.Flush()
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 500, "number of samples")
	cmd.Flags().IntVar(&window, "window", 100, "samples kept per series")
	return cmd
}

func newMultiCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "multi",
		Short: "Record two call sites from two goroutines, one chart each",
		RunE: func(cmd *cobra.Command, args []string) error {
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				for i := 0; i < steps; i++ {
					x := float64(i)
					plot.Plot(plot.XY("x squared", x, x*x), plot.Caption("Quadratic"))
				}
			}()
			go func() {
				defer wg.Done()
				for i := 0; i < steps; i++ {
					x := float64(i)
					plot.Plot(plot.XY("x cubed", x, x*x*x), plot.Caption("Cubic"))
				}
			}()
			wg.Wait()
			return plot.Flush()
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 50, "samples per call site")
	return cmd
}
