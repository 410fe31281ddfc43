package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/matrixlab/internal/config"
	"github.com/san-kum/matrixlab/internal/export"
	"github.com/san-kum/matrixlab/internal/format"
	"github.com/san-kum/matrixlab/internal/history"
	"github.com/san-kum/matrixlab/internal/ops"
	"github.com/san-kum/matrixlab/internal/parse"
	"github.com/san-kum/matrixlab/internal/tui"
)

var (
	cfg        = config.DefaultConfig()
	configFile string
	dataDir    string
	precision  int
	themeName  string
	showSteps  bool
	saveRun    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "matrixlab",
		Short: "terminal matrix calculator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loaded
			}
			// CLI flags win over config file values.
			if cmd.Flags().Changed("precision") {
				cfg.Precision = precision
			}
			if cmd.Flags().Changed("theme") {
				cfg.Theme = themeName
			}
			if cmd.Flags().Changed("data") {
				cfg.DataDir = dataDir
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given.
			return tui.RunInteractive(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "history directory")
	pf.IntVar(&precision, "precision", config.DefaultPrecision, "display decimals")
	pf.StringVar(&themeName, "theme", config.DefaultTheme, "tui theme")

	reg := ops.NewRegistry()
	for _, name := range reg.List() {
		rootCmd.AddCommand(opCommand(reg, name))
	}

	fmtCmd := &cobra.Command{
		Use:   "fmt [matrix]",
		Short: "parse a matrix and print it normalized",
		Args:  cobra.ExactArgs(1),
		RunE:  formatMatrix,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [matrix]",
		Short: "plot each row as a series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotMatrix,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "replay a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return history.New(cfg.DataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run's result to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return history.New(cfg.DataDir).ExportCSV(os.Stdout, args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a saved run's result as an SVG grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := history.New(cfg.DataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			result, err := st.LoadResult(args[0])
			if err != nil {
				return err
			}
			if result == nil {
				return fmt.Errorf("run %s has no matrix result", args[0])
			}
			fmt.Print(export.MatrixSVG(result, meta.Precision))
			return nil
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list tui themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tui.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	samplesCmd := &cobra.Command{
		Use:   "samples",
		Short: "list sample matrices usable as @name arguments",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range config.ListSamples() {
				s, _ := config.Sample(name)
				fmt.Fprintf(w, "@%s\t%s\n", name, strings.ReplaceAll(s, "\n", "\\n"))
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(fmtCmd, plotCmd, listCmd, showCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, themesCmd, samplesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// opCommand builds one subcommand per registered operation.
func opCommand(reg *ops.Registry, name string) *cobra.Command {
	op, _ := reg.Get(name)

	use := name + " [matrix]"
	if op.Arity == 2 {
		use = name + " [matrixA] [matrixB]"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: op.Info,
		Args:  cobra.ExactArgs(op.Arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([][][]float64, len(args))
			for i, arg := range args {
				m, err := readMatrixArg(arg, name)
				if err != nil {
					return err
				}
				inputs[i] = m
			}

			var a, b [][]float64
			a = inputs[0]
			if len(inputs) > 1 {
				b = inputs[1]
			}

			res, err := reg.Run(name, a, b, cfg.Precision)
			if err != nil {
				return err
			}

			printResult(os.Stdout, res, cfg.Precision)

			if showSteps {
				printSteps(os.Stdout, res.Steps, cfg.Precision)
			}

			if saveRun {
				st := history.New(cfg.DataDir)
				if err := st.Init(); err != nil {
					return err
				}
				runID, err := st.Save(name, inputs, res, cfg.Precision)
				if err != nil {
					return err
				}
				fmt.Printf("run id: %s\n", runID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSteps, "steps", false, "print the row-operation trace")
	cmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the history directory")
	return cmd
}

// readMatrixArg resolves a matrix argument: "-" reads stdin, "@name" is a
// sample, anything else parses as matrix text.
func readMatrixArg(arg, opName string) ([][]float64, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		arg = string(data)
	} else if strings.HasPrefix(arg, "@") {
		s, ok := config.Sample(arg[1:])
		if !ok {
			return nil, fmt.Errorf("unknown sample: %s (available: @%s)", arg, strings.Join(config.ListSamples(), ", @"))
		}
		arg = s
	}
	if opName == "indep" {
		return parse.Vectors(arg)
	}
	return parse.Matrix(arg)
}

func printResult(w io.Writer, res *ops.Result, prec int) {
	if res.Scalar != "" {
		fmt.Fprintf(w, "result: %s\n", res.Scalar)
	}
	if res.Note != "" {
		fmt.Fprintln(w, res.Note)
	}
	if len(res.Pivots) > 0 {
		cols := make([]string, len(res.Pivots))
		for i, p := range res.Pivots {
			cols[i] = fmt.Sprintf("%d", p+1)
		}
		fmt.Fprintf(w, "pivot columns: %s\n", strings.Join(cols, ", "))
	}
	if res.Matrix != nil {
		fmt.Fprintln(w, format.Grid(res.Matrix, prec))
		fmt.Fprintln(w, format.Line(res.Matrix, prec))
	}
}

func printSteps(w io.Writer, steps []ops.Step, prec int) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(w, "\nsteps:")
	for i, step := range steps {
		fmt.Fprintf(w, "%d. %s\n", i+1, step.Desc)
		if step.Snapshot != nil {
			for _, line := range strings.Split(format.Grid(step.Snapshot, prec), "\n") {
				fmt.Fprintf(w, "   %s\n", line)
			}
		}
	}
}

func formatMatrix(cmd *cobra.Command, args []string) error {
	m, err := readMatrixArg(args[0], "fmt")
	if err != nil {
		return err
	}
	fmt.Println(format.Bracketed(m, cfg.Precision))
	return nil
}

func plotMatrix(cmd *cobra.Command, args []string) error {
	m, err := readMatrixArg(args[0], "plot")
	if err != nil {
		return err
	}
	for i, row := range m {
		graph := asciigraph.Plot(row,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("row %d", i+1)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := history.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOP\tTIME\tSHAPES\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Op,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			strings.Join(run.Shapes, " "),
			run.Steps,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := history.New(cfg.DataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("op: %s\n", meta.Op)
	fmt.Printf("time: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	if meta.Scalar != "" {
		fmt.Printf("result: %s\n", meta.Scalar)
	}
	if meta.Note != "" {
		fmt.Println(meta.Note)
	}

	result, err := st.LoadResult(runID)
	if err != nil {
		return err
	}
	if result != nil {
		fmt.Println(format.Grid(result, meta.Precision))
	}

	steps, err := st.LoadSteps(runID)
	if err != nil {
		return err
	}
	if len(steps) > 0 {
		fmt.Println("\nsteps:")
		for _, line := range steps {
			fmt.Println(line)
		}
	}
	return nil
}
