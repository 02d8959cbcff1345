package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/digitalbazaar/jsonld-cli/internal/config"
	"github.com/digitalbazaar/jsonld-cli/internal/input"
	"github.com/digitalbazaar/jsonld-cli/internal/lint"
	"github.com/digitalbazaar/jsonld-cli/internal/loader"
	"github.com/digitalbazaar/jsonld-cli/internal/log"
	"github.com/digitalbazaar/jsonld-cli/internal/model"
	"github.com/digitalbazaar/jsonld-cli/internal/processor"
)

// NewRootCmd creates the root command for jsonld.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonld",
		Short: "Process JSON-LD documents from the command line",
		Long: `jsonld reads a JSON-LD document from a file, a URL, or stdin and runs
one JSON-LD operation over it: format, lint, compact, expand, flatten,
frame, toRdf, or canonize.

Remote contexts and other secondary resources are fetched through a
policy-enforcing loader: only allow-listed URL schemes are loaded
(http and https by default; pass --allow file to permit local files).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().Int("indent", config.DefaultIndent,
		"Number of spaces per indentation level in JSON output")
	cmd.PersistentFlags().Bool("no-newline", false,
		"Do not append a trailing newline to the output")
	cmd.PersistentFlags().BoolP("insecure", "k", false,
		"Skip TLS certificate verification on fetches")
	cmd.PersistentFlags().StringSlice("allow", nil,
		"Add a URL scheme (http, https, file) to the secondary-resource allow-list")
	cmd.PersistentFlags().String("type", "",
		"Override input type detection (json, html, yaml, nquads, turtle, ntriples, trig, or a media type)")
	cmd.PersistentFlags().StringP("base", "b", "",
		"Base IRI for the document")
	cmd.PersistentFlags().Bool("safe", false,
		"Lint the input first and abort if any warning or error is found")
	cmd.PersistentFlags().Bool("cache", false,
		"Cache fetched remote documents in a local SQLite database")
	cmd.PersistentFlags().Duration("max-age", config.DefaultCacheMaxAge,
		"How long cached remote documents stay fresh")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose logging")
	cmd.PersistentFlags().String("config", "",
		"Configuration file path (default: .jsonld-cli in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewFormatCmd())
	cmd.AddCommand(NewLintCmd())
	cmd.AddCommand(NewCompactCmd())
	cmd.AddCommand(NewExpandCmd())
	cmd.AddCommand(NewFlattenCmd())
	cmd.AddCommand(NewFrameCmd())
	cmd.AddCommand(NewToRDFCmd())
	cmd.AddCommand(NewCanonizeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. Errors print to standard output with
// their cause chain; --verbose adds stack traces.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errLintFindings) {
			verbose, flagErr := cmd.PersistentFlags().GetBool("verbose")
			if flagErr == nil && verbose {
				fmt.Fprintf(os.Stdout, "%+v\n", err)
			} else {
				fmt.Fprintf(os.Stdout, "%v\n", err)
			}
		}
		os.Exit(1)
	}
}

// buildConfig creates a Config from the config file and cobra flags.
// File values override defaults; flags the user actually set override both.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configPath)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, errors.Wrapf(err, "invalid config file %s", configPath)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, errors.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if flags.Changed("indent") {
		if cfg.Indent, err = flags.GetInt("indent"); err != nil {
			return nil, err
		}
	}
	if cfg.NoNewline, err = flags.GetBool("no-newline"); err != nil {
		return nil, err
	}
	if cfg.Insecure, err = flags.GetBool("insecure"); err != nil {
		return nil, err
	}

	// --allow adds schemes on top of the configured list rather than
	// replacing it, so --allow file keeps http and https working.
	allow, err := flags.GetStringSlice("allow")
	if err != nil {
		return nil, err
	}
	for _, scheme := range allow {
		scheme = strings.ToLower(scheme)
		if !cfg.SchemeAllowed(scheme) {
			cfg.Allow = append(cfg.Allow, scheme)
		}
	}

	if cfg.InputType, err = flags.GetString("type"); err != nil {
		return nil, err
	}
	if cfg.Base, err = flags.GetString("base"); err != nil {
		return nil, err
	}
	if cfg.Safe, err = flags.GetBool("safe"); err != nil {
		return nil, err
	}
	if flags.Changed("cache") {
		if cfg.CacheEnabled, err = flags.GetBool("cache"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-age") {
		if cfg.CacheMaxAge, err = flags.GetDuration("max-age"); err != nil {
			return nil, err
		}
	}
	if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration error")
	}
	return cfg, nil
}

// runtime bundles the wired-up components one command invocation needs.
type runtime struct {
	cfg      *config.Config
	logger   *slog.Logger
	closers  []func() error
	resolver *input.Resolver
	proc     *processor.Processor
}

// newRuntime wires the fetcher, cache, policy loader, input resolver, and
// processor from the configuration.
func newRuntime(cfg *config.Config) (*runtime, error) {
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	fetcher := loader.NewFetcher(cfg)

	dc, err := loader.OpenCache(cfg)
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		cfg:      cfg,
		logger:   logger,
		resolver: input.NewResolver(cfg, fetcher, nil),
		proc:     processor.New(cfg, loader.NewPolicyLoader(cfg, fetcher, dc, logger)),
	}
	if dc != nil {
		rt.closers = append(rt.closers, dc.Close)
	}
	return rt, nil
}

// Close releases resources held by the runtime.
func (rt *runtime) Close() {
	for _, c := range rt.closers {
		if err := c(); err != nil {
			rt.logger.Warn("cleanup failed", "error", err)
		}
	}
}

// setupRuntime builds the config and runtime for a command invocation.
// Callers must Close the returned runtime.
func setupRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	return newRuntime(cfg)
}

// inputArg returns the positional input argument, or "" for stdin.
func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// sourceName names the input for findings and error messages.
func sourceName(arg string) string {
	if arg == "" || arg == "-" {
		return "stdin"
	}
	return arg
}

// checkSafe enforces --safe: an input with blocking lint findings aborts
// before processing. JSON inputs are linted as written; YAML and HTML
// inputs are linted as the decoded JSON tree, matching what the lint
// command checks. RDF inputs have nothing for a JSON-LD linter to see.
func checkSafe(rt *runtime, doc *input.Document, source string) error {
	if !rt.cfg.Safe || doc.Type.IsRDF() {
		return nil
	}

	raw := doc.Raw
	if doc.Type != input.TypeJSON {
		var err error
		raw, err = json.Marshal(doc.Data)
		if err != nil {
			return errors.Wrap(err, "failed to re-serialize input for safe mode")
		}
	}

	report := lint.New(lintBase(rt.cfg, doc)).Lint(source, raw)
	if report.HasBlocking() {
		n := report.Count(model.SeverityWarning) + report.Count(model.SeverityError)
		return errors.Errorf(
			"safe mode: %d blocking lint finding(s) in %s (run \"jsonld lint %s\" for details)",
			n, source, source)
	}
	return nil
}

// lintBase settles the base IRI the linter assumes: --base when given,
// otherwise the document's own URL. Stdin input has neither.
func lintBase(cfg *config.Config, doc *input.Document) string {
	if cfg.Base != "" {
		return cfg.Base
	}
	return doc.URL
}

// requireJSONInput rejects RDF serializations for commands whose input
// must be a JSON-LD document. Only format consumes RDF directly.
func requireJSONInput(doc *input.Document, op string) error {
	if doc.Type.IsRDF() {
		return errors.Errorf(
			"%s requires a JSON-LD input, got %s (use \"jsonld format\" to convert RDF)",
			op, doc.Type)
	}
	return nil
}

// writeJSON prints v to the command's output as indented JSON, honoring
// --indent and --no-newline.
func writeJSON(cmd *cobra.Command, cfg *config.Config, v interface{}) error {
	var data []byte
	var err error
	if cfg.Indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", cfg.Indent))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return errors.Wrap(err, "failed to serialize output")
	}

	if !cfg.NoNewline {
		data = append(data, '\n')
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// writeRaw prints an already-serialized document (RDF output), normalizing
// the trailing newline per --no-newline.
func writeRaw(cmd *cobra.Command, cfg *config.Config, s string) error {
	s = strings.TrimRight(s, "\n")
	if !cfg.NoNewline {
		s += "\n"
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), s)
	return err
}
