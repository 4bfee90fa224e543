package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/canwage/canwage/internal/breakeven"
	"github.com/canwage/canwage/internal/calculation"
	"github.com/canwage/canwage/internal/config"
	"github.com/canwage/canwage/internal/domain"
	"github.com/canwage/canwage/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "canwage %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "canwage",
	Short: "Canadian payroll deduction and break-even wage calculator",
	Long:  "Computes income tax, CPP and EI deductions for a gross annual income, and solves the gross wage needed to net a target annual expense",
}

// loadTaxYear loads the tax year from --config, or falls back to the
// built-in 2024 federal/Ontario parameter set.
func loadTaxYear(cmd *cobra.Command) (domain.TaxYear, error) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		return domain.DefaultTaxYear2024(), nil
	}
	parser := config.NewInputParser()
	taxYear, err := parser.LoadFromFile(configFile)
	if err != nil {
		return domain.TaxYear{}, err
	}
	return *taxYear, nil
}

func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	taxYear, err := loadTaxYear(cmd)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewEngine(taxYear)
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	engine.Debug = debugMode
	return engine, nil
}

var deductionsCmd = &cobra.Command{
	Use:   "deductions [gross-annual-income]",
	Short: "Itemize payroll deductions for a gross annual income",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		income, err := decimal.NewFromString(args[0])
		if err != nil {
			log.Fatalf("invalid income %q: %v", args[0], err)
		}

		engine, err := newEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		selfEmployed, _ := cmd.Flags().GetBool("self-employed")
		breakdown, err := engine.DeductionBreakdown(income, selfEmployed)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		rg := output.NewReportGenerator(os.Stdout)
		if err := rg.WriteDeductionReport(breakdown, format); err != nil {
			log.Fatal(err)
		}
	},
}

var breakEvenCmd = &cobra.Command{
	Use:   "break-even [base-expense] [weekly-hours]",
	Short: "Solve the gross hourly wage needed to net a target annual expense",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		baseExpense, err := decimal.NewFromString(args[0])
		if err != nil {
			log.Fatalf("invalid base expense %q: %v", args[0], err)
		}
		weeklyHours, err := decimal.NewFromString(args[1])
		if err != nil {
			log.Fatalf("invalid weekly hours %q: %v", args[1], err)
		}

		engine, err := newEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		selfEmployed, _ := cmd.Flags().GetBool("self-employed")
		solver := breakeven.NewDefaultSolver(engine)
		result, err := solver.BreakEvenWage(baseExpense, weeklyHours, selfEmployed)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		rg := output.NewReportGenerator(os.Stdout)
		if err := rg.WriteBreakEvenReport(result, format); err != nil {
			log.Fatal(err)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate a tax year configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		taxYear, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Configuration file %s is valid (tax year %d)\n", args[0], taxYear.Year)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{deductionsCmd, breakEvenCmd} {
		cmd.Flags().Bool("self-employed", false, "Treat income as self-employment income")
		cmd.Flags().String("config", "", "Tax year configuration file (YAML); defaults to built-in 2024 rules")
		cmd.Flags().String("format", "console", "Output format: console, json, csv")
		cmd.Flags().Bool("debug", false, "Enable debug logging")
	}
	rootCmd.AddCommand(deductionsCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
