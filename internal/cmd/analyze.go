package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/analyzer"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/cache"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/collector"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/config"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/output"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/rules"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/validate"
	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/worker"
)

var (
	configPath string
	jsonOutput bool
	verbose    bool
	inputFile  string
	workers    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [domains...]",
	Short: "Analyze one or more domains for risk indicators",
	Long: `Analyze domains and print an explainable risk assessment.

Exit codes:
  0  every analyzed domain classified Low or Medium
  1  at least one domain classified High or Critical
  2  invalid input (malformed domain, unreadable file, bad config)

Examples:
  webrisk analyze example.com
  webrisk analyze secure-login.tk bank-verify.ml --json
  webrisk analyze --input domains.txt --workers 10`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (YAML)")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	analyzeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	analyzeCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File with one domain per line")
	analyzeCmd.Flags().IntVar(&workers, "workers", 5, "Concurrent analyses in batch mode")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	domains := args
	if inputFile != "" {
		fromFile, err := readDomainFile(inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		domains = append(domains, fromFile...)
	}
	if len(domains) == 0 {
		return fmt.Errorf("no domains given: pass arguments or --input")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// The CLI stays quiet unless asked; collection details land on stderr
	// with --verbose.
	logCfg := cfg.Logging
	logCfg.Format = "text"
	if !verbose {
		logCfg.Level = "warn"
	}
	setupLogging(logCfg, verbose)

	svc, err := buildService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	pool := worker.NewPool(svc, workers)
	outcomes := pool.Run(cmd.Context(), domains)

	exitCode := 0
	var results []domain.Result

	for _, oc := range outcomes {
		if oc.Err != nil {
			if errors.Is(oc.Err, validate.ErrInvalidDomain) {
				exitCode = 2
			} else if exitCode == 0 {
				exitCode = 1
			}
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", oc.Input, oc.Err)
			continue
		}

		results = append(results, oc.Result)
		if oc.Result.Classification.Severe() && exitCode == 0 {
			exitCode = 1
		}
	}

	if err := printResults(results); err != nil {
		return err
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func printResults(results []domain.Result) error {
	if jsonOutput {
		var (
			rendered string
			err      error
		)
		if len(results) == 1 {
			rendered, err = output.JSONOutput(results[0])
		} else {
			rendered, err = output.JSONBatchOutput(results)
		}
		if err != nil {
			return err
		}
		fmt.Println(rendered)
		return nil
	}

	for _, result := range results {
		fmt.Println()
		fmt.Println(output.TableOutput(result))
	}
	return nil
}

// buildService assembles the analyzer from validated configuration. Custom
// rule compilation happens here, before any analysis, so a broken rule
// rejects the whole run.
func buildService(cfg *domain.Config) (*analyzer.Service, error) {
	annotator, err := rules.NewAnnotator(cfg.CustomRules)
	if err != nil {
		return nil, err
	}

	resultCache, err := cache.New(cfg.Cache)
	if err != nil {
		slog.Warn("cache unavailable, continuing without it", "error", err)
		resultCache = nil
	}

	return analyzer.NewService(cfg, collector.NewService(cfg), annotator, resultCache), nil
}

func readDomainFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	var domains []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains = append(domains, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	return domains, nil
}
