package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/qa"
)

func newQACmd(c *cli) *cobra.Command {
	var (
		baseURL    string
		checksFile string
		parallel   int
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "qa",
		Short: "Run smoke checks against a running API",
		Long: `QA issues the GET requests listed in the check suite and verifies that each
response is 200 and contains the expected text. The built-in suite covers
health, consultancy and training center search, rankings and filters.

Exits non-zero when any check fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suite, err := qa.DefaultSuite()
			if checksFile != "" {
				suite, err = qa.LoadFile(checksFile)
			}
			if err != nil {
				return err
			}

			runner := &qa.Runner{
				BaseURL:     baseURL,
				Client:      &http.Client{Timeout: timeout},
				Parallelism: parallel,
			}
			results, err := runner.Run(cmd.Context(), suite)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				switch {
				case r.Passed():
					fmt.Fprintf(out, "PASS  %-28s %s (%s)\n", r.Check.Name, r.Check.Path, r.Duration.Round(time.Millisecond))
				case r.Err != nil:
					fmt.Fprintf(out, "FAIL  %-28s %s: %v\n", r.Check.Name, r.Check.Path, r.Err)
				case r.Status != http.StatusOK:
					fmt.Fprintf(out, "FAIL  %-28s %s: status %d\n", r.Check.Name, r.Check.Path, r.Status)
				default:
					fmt.Fprintf(out, "FAIL  %-28s %s: missing %q\n", r.Check.Name, r.Check.Path, r.Missing)
				}
			}

			passed, failed := qa.Summarize(results)
			fmt.Fprintf(out, "\n%d passed, %d failed\n", passed, failed)
			c.logger.Debug("qa finished", zap.String("baseUrl", baseURL), zap.Int("passed", passed), zap.Int("failed", failed))
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "API base URL")
	cmd.Flags().StringVar(&checksFile, "checks", "", "YAML check suite (default: built-in)")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "Checks run concurrently")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-request timeout")
	return cmd
}
