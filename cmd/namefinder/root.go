package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/namefinder/namefinder/internal/config"
	"github.com/namefinder/namefinder/internal/desktop"
	"github.com/namefinder/namefinder/internal/i18n"
	"github.com/namefinder/namefinder/internal/logging"
	"github.com/namefinder/namefinder/internal/names"
	"github.com/namefinder/namefinder/internal/search"
	"github.com/namefinder/namefinder/internal/theme"
	"github.com/namefinder/namefinder/internal/tui"
	"github.com/namefinder/namefinder/internal/update"
)

// errReported means the failure was already shown to the user; main only
// has to set the exit status.
var errReported = errors.New("reported")

type flags struct {
	ui     string
	theme  string
	lang   string
	config string
	pipe   string
	update bool
}

// Front ends are swapped out in tests.
var (
	runTerminal = startTerminal
	runDesktop  = desktop.Run
	failDesktop = desktop.Fail
)

func startTerminal(opts tui.Options) error {
	_, err := tea.NewProgram(tui.New(opts), tea.WithAltScreen()).Run()
	return err
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "namefinder [names-file]",
		Short: "Search a list of names as you type",
		Long: `namefinder loads a plain-text file with one name per line and filters it
live while you type. Matching is a case-sensitive substring search.

Settings come from flags, then the config file, then built-in defaults.
The config directory can be moved with NAMEFINDER_CONFIG_DIR.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.update {
				return runUpdate(cmd.Context(), stdout)
			}

			cfg, cfgErr, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}

			i18n.Init(cfg.Language)
			if closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level); err != nil {
				fmt.Fprintf(stderr, "warning: logging disabled: %v\n", err)
				logging.Disable()
			} else {
				defer closer.Close()
			}
			if cfgErr != nil {
				fmt.Fprintf(stderr, "warning: %v; using defaults\n", cfgErr)
				log.Warn().Err(cfgErr).Msg("config unreadable, using defaults")
			}

			log.Info().
				Str("version", version).
				Str("ui", cfg.UI).
				Str("names_file", cfg.NamesFile).
				Str("language", i18n.Lang()).
				Msg("starting")

			palette, err := theme.Lookup(cfg.Theme)
			if err != nil {
				log.Warn().Err(err).Msg("falling back to default theme")
			}

			list, loadErr := names.Load(cfg.NamesFile)
			problem := names.Describe(loadErr, cfg.NamesFile)
			if problem != nil {
				log.Warn().Err(problem.Err).Str("severity", problem.Severity.String()).Msg("loading names")
			}

			if cmd.Flags().Changed("pipe") {
				return runPipe(stdin, stdout, stderr, list, problem, f.pipe)
			}

			if cfg.UI == config.UIDesktop {
				if problem != nil && problem.Fatal() {
					failDesktop(problem)
					return errReported
				}
				return runDesktop(desktop.Options{
					Names:   list,
					Source:  cfg.NamesFile,
					Problem: problem,
					Palette: palette,
					Width:   cfg.Window.Width,
					Height:  cfg.Window.Height,
				})
			}

			if problem != nil && problem.Fatal() {
				reportProblem(stderr, problem)
				return errReported
			}
			return runTerminal(tui.Options{
				Names:   list,
				Source:  cfg.NamesFile,
				Problem: problem,
				Palette: palette,
			})
		},
	}
	cmd.SetVersionTemplate("namefinder {{.Version}}\n")
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVar(&f.ui, "ui", config.UITerminal, "front end: tui or desktop")
	fl.StringVar(&f.theme, "theme", theme.Default, "color theme: "+strings.Join(theme.Names(), ", "))
	fl.StringVar(&f.lang, "lang", "", "interface language: "+strings.Join(i18n.Supported(), ", "))
	fl.StringVar(&f.config, "config", "", "config file (default "+config.ConfigFile()+")")
	fl.StringVar(&f.pipe, "pipe", "", "print matches for a query and exit (reads stdin when empty)")
	fl.BoolVar(&f.update, "update", false, "update to the latest release")

	return cmd
}

// resolveConfig layers command-line values over the config file, which in
// turn sits over the defaults. A config file that cannot be parsed is not
// fatal: its error comes back as cfgErr and the defaults are used. A missing
// default config file is written out so users have something to edit.
func resolveConfig(cmd *cobra.Command, f flags, args []string) (cfg config.Config, cfgErr error, err error) {
	if f.config != "" {
		cfg, cfgErr = config.LoadFrom(f.config)
	} else {
		firstRun := config.IsFirstRun()
		cfg, cfgErr = config.Load()
		if cfgErr == nil && firstRun {
			if saveErr := config.Save(cfg); saveErr != nil {
				log.Warn().Err(saveErr).Msg("could not write default config")
			}
		}
	}
	if cfgErr != nil {
		cfgErr = fmt.Errorf("loading config: %w", cfgErr)
		cfg = config.Defaults()
	}

	fl := cmd.Flags()
	if fl.Changed("ui") {
		cfg.UI = f.ui
	}
	if fl.Changed("theme") {
		cfg.Theme = f.theme
	}
	if fl.Changed("lang") {
		cfg.Language = f.lang
	}
	if len(args) > 0 {
		cfg.NamesFile = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return cfg, cfgErr, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, cfgErr, nil
}

// runPipe prints the rows for query, one per line. An empty query is read
// from stdin instead.
func runPipe(stdin io.Reader, stdout, stderr io.Writer, list []string, problem *names.Problem, query string) error {
	if problem != nil {
		reportProblem(stderr, problem)
		if problem.Fatal() {
			return errReported
		}
	}

	if strings.TrimSpace(query) == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		query = string(data)
	}

	res := search.Evaluate(list, query)
	for _, row := range res.Rows(i18n.T("search.no_match")) {
		fmt.Fprintln(stdout, row)
	}
	return nil
}

func reportProblem(w io.Writer, p *names.Problem) {
	fmt.Fprintf(w, "%s: %s\n", p.Title, p.Message)
}

func runUpdate(ctx context.Context, out io.Writer) error {
	if version == "dev" {
		fmt.Fprintln(out, "Auto-update is not available for development builds.")
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(out, "Checking for updates...")
	res, err := update.Apply(ctx, version)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	if res.Applied {
		fmt.Fprintf(out, "Updated to v%s. Restart namefinder to use the new version.\n", res.LatestVersion)
	} else {
		fmt.Fprintln(out, "Already running the latest version.")
	}
	return nil
}
