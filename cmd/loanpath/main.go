package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loanpath/loanpath/internal/amort"
	"github.com/loanpath/loanpath/internal/compare"
	"github.com/loanpath/loanpath/internal/config"
	"github.com/loanpath/loanpath/internal/domain"
	"github.com/loanpath/loanpath/internal/output"
)

// zapEngineLogger adapts a zap sugared logger to the engine's Logger interface
type zapEngineLogger struct {
	s *zap.SugaredLogger
}

func (l zapEngineLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapEngineLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapEngineLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapEngineLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

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
			fmt.Fprintf(os.Stdout, "loanpath %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "loanpath",
	Short: "Loan amortization calculator CLI",
	Long:  "Compute fixed payments, amortization schedules, and what-if payoff comparisons for amortizing loans",
}

// newEngine builds the calculation engine, wiring a zap logger when --debug
// is set.
func newEngine(cmd *cobra.Command) *amort.Engine {
	engine := amort.NewEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		zl, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		engine.SetLogger(zapEngineLogger{s: zl.Sugar()})
	}
	return engine
}

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Calculate the fixed monthly payment for a loan",
	Run: func(cmd *cobra.Command, args []string) {
		principal, _ := cmd.Flags().GetFloat64("principal")
		rate, _ := cmd.Flags().GetFloat64("rate")
		term, _ := cmd.Flags().GetInt("term")
		termUnit, _ := cmd.Flags().GetString("term-unit")

		termMonths, err := domain.ConvertTermToMonths(term, domain.TermUnit(termUnit))
		if err != nil {
			log.Fatal(err)
		}

		summary, err := amort.CalculatePayment(
			decimal.NewFromFloat(principal),
			decimal.NewFromFloat(rate),
			termMonths)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("FIXED PAYMENT CALCULATION")
		fmt.Println("=========================")
		fmt.Printf("Principal:       %s\n", output.FormatCurrency(decimal.NewFromFloat(principal)))
		fmt.Printf("Annual Rate:     %s\n", output.FormatPercentage(decimal.NewFromFloat(rate)))
		fmt.Printf("Term:            %d months\n", termMonths)
		fmt.Printf("Monthly Payment: %s\n", output.FormatCurrency(summary.MonthlyPayment))
		fmt.Printf("Total Payment:   %s\n", output.FormatCurrency(summary.TotalPayment))
		fmt.Printf("Total Interest:  %s\n", output.FormatCurrency(summary.TotalInterest))
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [loan-file]",
	Short: "Generate the month-by-month payment schedule for a loan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		loan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		report, err := output.NewScheduleReport(engine, *loan)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unsupported format: %s (want console, csv, or json)", outputFormat)
		}
		data, err := formatter.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [loan-file]",
	Short: "Compare the loan's baseline schedule against its what-if adjustments",
	Long: `Compare the loan as originally scheduled against the schedule with the
file's extra payments and rate adjustments applied, reporting interest and
months saved.

Examples:
  loanpath compare loan.yaml
  loanpath compare loan.yaml --format csv
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		loan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := compare.NewCompareEngine(newEngine(cmd))
		comp, err := engine.Compare(*loan)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		switch outputFormat {
		case "console":
			tf := &compare.TableFormatter{}
			fmt.Print(tf.Format(comp))
		case "csv":
			cf := &compare.CSVFormatter{}
			out, err := cf.Format(comp)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "json":
			jf := &compare.JSONFormatter{Pretty: true}
			out, err := jf.Format(comp)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		default:
			log.Fatalf("unsupported format: %s (want console, csv, or json)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [loan-file]",
	Short: "Validate a loan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		_, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Loan file %s is valid\n", args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	paymentCmd.Flags().Float64P("principal", "p", 0, "Loan principal amount")
	paymentCmd.Flags().Float64P("rate", "r", 0, "Nominal annual interest rate in percent (e.g. 5.5)")
	paymentCmd.Flags().IntP("term", "t", 0, "Loan term length")
	paymentCmd.Flags().String("term-unit", "months", "Unit of the term: months or years")
	_ = paymentCmd.MarkFlagRequired("principal")
	_ = paymentCmd.MarkFlagRequired("term")

	scheduleCmd.Flags().StringP("format", "f", "console", "Output format: console, csv, or json")
	compareCmd.Flags().StringP("format", "f", "console", "Output format: console, csv, or json")

	rootCmd.AddCommand(paymentCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
