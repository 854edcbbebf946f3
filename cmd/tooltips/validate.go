package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/tooltips/internal/config"
	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/internal/report"
)

func validateCmd() *cobra.Command {
	var (
		asJSON bool
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "validate [page.html...]",
		Short: "Check the tooltip definitions of pages",
		Long: `Load each page headlessly, register its tooltip definitions
and report what would happen to each one at runtime.

Without arguments the page from tooltips.json (dev.page) is checked.
The command fails when the root container is missing or a definition
would be skipped. Style lint findings are printed as warnings only.

Examples:
  tooltips validate
  tooltips validate docs/*.html
  tooltips validate --json index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(dir)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			pages := args
			if len(pages) == 0 {
				pages = []string{cfg.PagePath()}
			}
			return runValidate(cmd.OutOrStdout(), cfg, pages, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print reports as JSON")
	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "Project directory")
	return cmd
}

func runValidate(out io.Writer, cfg *config.Config, pages []string, asJSON bool) error {
	var (
		reports []*report.Report
		failed  int
	)
	for _, page := range pages {
		r, err := buildReport(page, cfg)
		if err != nil {
			return err
		}
		reports = append(reports, r)
		if r.Err() != nil {
			failed++
		}
		if !asJSON {
			printReport(out, page, r)
		}
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errors.New("T041").
			WithDetail(fmt.Sprintf("%d of %d pages have problems.", failed, len(pages)))
	}
	return nil
}

func buildReport(page string, cfg *config.Config) (*report.Report, error) {
	f, err := os.Open(page)
	if err != nil {
		return nil, errors.New("T040").WithSubject(page).Wrap(err)
	}
	defer f.Close()

	r, err := report.Build(f, cfg.TooltipsConfig())
	if err != nil {
		return nil, errors.FromError(err, "T040").WithSubject(page)
	}
	return r, nil
}

func printReport(out io.Writer, page string, r *report.Report) {
	fmt.Fprintf(out, "%s\n", page)
	if !r.RootFound {
		errorMsg(out, "root container #%s not found", r.RootID)
	}
	for _, e := range r.Entries {
		switch e.Status {
		case report.StatusOK:
			success(out, "%s → %s (%s, %s)", e.ID, e.Target, e.Trigger, e.Placement)
		case report.StatusDuplicate:
			warn(out, "%s: duplicate id, ignored", e.ID)
		default:
			label := e.ID
			if label == "" {
				label = fmt.Sprintf("definition %d", e.Index)
			}
			errorMsg(out, "%s: %s", label, e.Error)
		}
		for _, w := range e.Warnings {
			warn(out, "%s: %s", e.ID, w)
		}
	}
	info(out, "%d of %d definitions registered", r.Registered, len(r.Entries))
}
