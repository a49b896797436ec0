package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nicalabs/planilla/internal/calculation"
	"github.com/nicalabs/planilla/internal/config"
	"github.com/nicalabs/planilla/internal/domain"
	"github.com/nicalabs/planilla/internal/output"
	"github.com/nicalabs/planilla/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagFormat string
	flagRates  string
	flagDB     string
	flagOutput string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "planilla",
	Short: "Nicaraguan payroll and severance calculator",
	Long:  "Gross-to-net payroll, liquidación and vacation accrual under Nicaraguan labor law",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "console",
		fmt.Sprintf("output format (%v)", output.FormatterNames()))
	rootCmd.PersistentFlags().StringVar(&flagRates, "rates", "",
		"fiscal-year rates YAML file (defaults to the compiled-in tables)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"SQLite database path for employees and history")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "",
		"write the report to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "verbose logging")

	rootCmd.AddCommand(payrollCmd(), severanceCmd(), vacationCmd(), validateCmd(),
		employeeCmd(), historyCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRates() *domain.Rates {
	rates, err := config.LoadRates(flagRates)
	if err != nil {
		log.Fatal(err)
	}
	if flagDebug && flagRates != "" {
		log.Printf("DEBUG: loaded rates for fiscal year %d from %s",
			rates.Metadata.FiscalYear, flagRates)
	}
	return rates
}

func emit(doc *output.Document) {
	f := output.GetFormatterByName(flagFormat)
	if f == nil {
		log.Fatalf("unsupported format: %s (available: %v)", flagFormat, output.FormatterNames())
	}
	data, err := f.Format(doc)
	if err != nil {
		log.Fatal(err)
	}
	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
			log.Fatal(err)
		}
		return
	}
	if _, err := os.Stdout.Write(data); err != nil {
		log.Fatal(err)
	}
}

// openDB opens the store named by --db, or returns nil when unset.
func openDB() *store.SQLite {
	if flagDB == "" {
		return nil
	}
	db, err := store.Open(flagDB)
	if err != nil {
		log.Fatal(err)
	}
	return db
}

// archive appends the run to the history log when --db is set.
func archive(db *store.SQLite, kind string, input any, doc *output.Document) {
	if db == nil {
		return
	}
	in, err := json.Marshal(input)
	if err != nil {
		log.Fatal(err)
	}
	res, err := json.Marshal(doc)
	if err != nil {
		log.Fatal(err)
	}
	entry := &store.HistoryEntry{Kind: kind, Input: in, Result: res}
	if err := db.Append(context.Background(), entry); err != nil {
		log.Fatal(err)
	}
	if flagDebug {
		log.Printf("DEBUG: archived %s run as history entry %d", kind, entry.ID)
	}
}

func payrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payroll [input-file]",
		Short: "Compute a gross-to-net payroll run",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doc, err := config.NewInputParser().LoadPayrollFile(args[0])
			if err != nil {
				log.Fatal(err)
			}
			calc := calculation.NewPayrollCalculator(loadRates())

			db := openDB()
			if db != nil {
				defer db.Close()
			}

			if len(doc.Entries) == 1 {
				result, err := calc.Calculate(doc.Entries[0].Input)
				if err != nil {
					log.Fatal(err)
				}
				out := &output.Document{Kind: output.KindPayroll, Payroll: result}
				archive(db, output.KindPayroll, doc.Entries[0], out)
				emit(out)
				return
			}

			sheet, err := calc.CalculateSheet(doc.Entries)
			if err != nil {
				log.Fatal(err)
			}
			out := &output.Document{Kind: output.KindSheet, Sheet: sheet}
			archive(db, output.KindSheet, doc.Entries, out)
			emit(out)
		},
	}
}

func severanceCmd() *cobra.Command {
	var compare bool
	cmd := &cobra.Command{
		Use:   "severance [input-file]",
		Short: "Compute a termination settlement (liquidación)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doc, err := config.NewInputParser().LoadSeveranceFile(args[0])
			if err != nil {
				log.Fatal(err)
			}
			calc := calculation.NewSeveranceCalculator(loadRates())

			db := openDB()
			if db != nil {
				defer db.Close()
			}

			for i, c := range doc.Cases {
				if i > 0 {
					fmt.Println()
				}
				if compare {
					printReasonComparison(calc, c)
					continue
				}
				result, err := calc.Calculate(c)
				if err != nil {
					log.Fatal(err)
				}
				out := &output.Document{Kind: output.KindSeverance, Severance: result}
				archive(db, output.KindSeverance, c, out)
				emit(out)
			}
		},
	}
	cmd.Flags().BoolVar(&compare, "compare", false,
		"show the settlement under every termination reason")
	return cmd
}

// printReasonComparison renders the what-if table for the compare flag.
func printReasonComparison(calc *calculation.SeveranceCalculator, c domain.SeveranceInput) {
	results, err := calc.CompareReasons(c)
	if err != nil {
		log.Fatal(err)
	}
	reasons := make([]domain.TerminationReason, 0, len(results))
	for r := range results {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

	fmt.Printf("%-26s %14s %14s %14s\n", "Reason", "Indemnity", "Deductions", "Net")
	for _, r := range reasons {
		res := results[r]
		fmt.Printf("%-26s %14s %14s %14s\n", r,
			res.Indemnity.StringFixed(2),
			res.TotalDeductions.StringFixed(2),
			res.NetPay.StringFixed(2))
	}
}

func vacationCmd() *cobra.Command {
	var hire, asOf, taken string
	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Report accrued vacation as of a date",
		Run: func(cmd *cobra.Command, args []string) {
			hireDate, err := time.Parse("2006-01-02", hire)
			if err != nil {
				log.Fatalf("invalid --hire date: %v", err)
			}
			asOfDate, err := time.Parse("2006-01-02", asOf)
			if err != nil {
				log.Fatalf("invalid --as-of date: %v", err)
			}
			takenDays, err := decimal.NewFromString(taken)
			if err != nil {
				log.Fatalf("invalid --taken: %v", err)
			}
			summary, err := calculation.VacationBalance(hireDate, asOfDate, takenDays)
			if err != nil {
				log.Fatal(err)
			}
			emit(&output.Document{Kind: output.KindVacation, Vacation: summary})
		},
	}
	cmd.Flags().StringVar(&hire, "hire", "", "hire date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&taken, "taken", "0", "vacation days already taken")
	cmd.MarkFlagRequired("hire")
	cmd.MarkFlagRequired("as-of")
	return cmd
}

func validateCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate an input file without computing anything",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			parser := config.NewInputParser()
			var err error
			switch kind {
			case "payroll":
				_, err = parser.LoadPayrollFile(args[0])
			case "severance":
				_, err = parser.LoadSeveranceFile(args[0])
			default:
				log.Fatalf("unknown --type %q (payroll or severance)", kind)
			}
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Input file %s is valid\n", args[0])
		},
	}
	cmd.Flags().StringVar(&kind, "type", "payroll", "document type (payroll or severance)")
	return cmd
}

func employeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage the stored employee records",
	}

	var name, salary, hire string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee record",
		Run: func(cmd *cobra.Command, args []string) {
			db := mustOpenDB()
			defer db.Close()

			monthlySalary, err := decimal.NewFromString(salary)
			if err != nil || !monthlySalary.IsPositive() {
				log.Fatalf("invalid --salary %q", salary)
			}
			hireDate, err := time.Parse("2006-01-02", hire)
			if err != nil {
				log.Fatalf("invalid --hire date: %v", err)
			}
			e := &domain.Employee{Name: name, MonthlySalary: monthlySalary, HireDate: hireDate}
			if err := db.Save(context.Background(), e); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Added employee %d: %s\n", e.ID, e.Name)
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "employee name")
	addCmd.Flags().StringVar(&salary, "salary", "", "monthly salary")
	addCmd.Flags().StringVar(&hire, "hire", "", "hire date (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("salary")
	addCmd.MarkFlagRequired("hire")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored employees",
		Run: func(cmd *cobra.Command, args []string) {
			db := mustOpenDB()
			defer db.Close()

			employees, err := db.List(context.Background())
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%-5s %-24s %14s %12s\n", "ID", "Name", "Salary", "Hired")
			for _, e := range employees {
				fmt.Printf("%-5d %-24s %14s %12s\n",
					e.ID, e.Name, e.MonthlySalary.StringFixed(2), e.HireDate.Format("2006-01-02"))
			}
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete an employee record",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			db := mustOpenDB()
			defer db.Close()

			var id int64
			if _, err := fmt.Sscan(args[0], &id); err != nil {
				log.Fatalf("invalid id %q", args[0])
			}
			if err := db.Delete(context.Background(), id); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Deleted employee %d\n", id)
		},
	}

	cmd.AddCommand(addCmd, listCmd, rmCmd)
	return cmd
}

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived calculation runs",
		Run: func(cmd *cobra.Command, args []string) {
			db := mustOpenDB()
			defer db.Close()

			entries, err := db.Recent(context.Background(), limit)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%-5s %-10s %-20s\n", "ID", "Kind", "When")
			for _, e := range entries {
				fmt.Printf("%-5d %-10s %-20s\n",
					e.ID, e.Kind, e.CreatedAt.Format(time.RFC3339))
			}
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to list")
	return cmd
}

func mustOpenDB() *store.SQLite {
	if flagDB == "" {
		log.Fatal("--db is required for this command")
	}
	db, err := store.Open(flagDB)
	if err != nil {
		log.Fatal(err)
	}
	return db
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "planilla %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil && flagDebug {
				fmt.Fprintln(os.Stdout, bi.String())
			}
		},
	}
}
