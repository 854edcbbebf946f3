package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vango-dev/tooltips/internal/config"
	"github.com/vango-dev/tooltips/internal/errors"
	"github.com/vango-dev/tooltips/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		templateName string
		name         string
		rootID       string
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter page and tooltips.json",
		Long: `Create tooltips.json, a sample page and a stylesheet in the
given directory (default: the current directory).

Existing files are never overwritten.

Templates:
  basic         A page with hover and click tooltips (default)
  interactive   Focus, interactive and custom styled tooltips

Examples:
  tooltips init
  tooltips init docs --template interactive --root-id tips`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd.OutOrStdout(), dir, templateName, name, rootID)
		},
	}

	cmd.Flags().StringVarP(&templateName, "template", "t", "basic", "Starter template")
	cmd.Flags().StringVar(&name, "name", "", "Page title (default: directory name)")
	cmd.Flags().StringVar(&rootID, "root-id", "", "id of the tooltip root container")
	return cmd
}

func runInit(out io.Writer, dir, templateName, name, rootID string) error {
	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	cfgPath := filepath.Join(dir, config.ConfigFileName)
	if config.Exists(dir) {
		return errors.New("T043").WithSubject(cfgPath)
	}

	cfg := config.New()
	if rootID != "" {
		cfg.Runtime.RootID = rootID
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		name = filepath.Base(abs)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := tmpl.Create(dir, templates.Config{
		ProjectName:     name,
		RootID:          cfg.Runtime.RootID,
		DefinitionClass: cfg.Runtime.DefinitionClass,
		ClassPrefix:     cfg.Runtime.ClassPrefix,
	}); err != nil {
		return err
	}
	if err := cfg.SaveTo(cfgPath); err != nil {
		return err
	}

	success(out, "Created %s project in %s", tmpl.Name, dir)
	info(out, "%s", config.ConfigFileName)
	for _, p := range tmpl.Paths() {
		info(out, "%s", p)
	}
	info(out, "")
	info(out, "Next: tooltips validate -C %s", dir)
	return nil
}
