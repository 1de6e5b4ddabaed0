// Package cli defines the verto command: flag surface, run
// orchestration, and the output contract. The translation is the only
// thing ever written to stdout; diagnostics and error rendering go to
// stderr.
package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"verto/internal/config"
	"verto/internal/container"
	"verto/internal/errors"
	"verto/internal/i18n"
	"verto/internal/registry"
	"verto/internal/resolver"
	"verto/internal/translator"
	"verto/internal/utils"
	"verto/internal/version"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/cobra"
	"go.uber.org/dig"
)

type options struct {
	model          string
	url            string
	key            string
	prompt         string
	timeoutSeconds int
	listModels     bool
	verbose        bool
	showVersion    bool
}

// NewRootCommand builds the verto command. Separated from Execute so
// tests can run the command against their own streams.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   `verto "<text>"`,
		Short: "Translate text from the command line using LLM endpoints",
		Long: "Verto - translate text from the command line using OpenAI-compatible\n" +
			"and Google Gemini LLM endpoints.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.model, "model", "m", registry.DefaultModel, "model to translate with")
	flags.StringVarP(&opts.url, "url", "u", "", "custom API base URL (overrides the model lookup)")
	flags.StringVarP(&opts.key, "key", "k", "", "API key (overrides provider environment variables)")
	flags.StringVarP(&opts.prompt, "prompt", "p", "", "translation instruction sent ahead of the text")
	flags.BoolVar(&opts.listModels, "list-models", false, "print every supported model grouped by provider and exit")
	flags.IntVar(&opts.timeoutSeconds, "timeout", 0, "request timeout in seconds (default 60)")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	flags.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	return cmd
}

// Execute runs the command and renders any failure. The returned error is
// non-nil exactly when the process should exit non-zero.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		RenderError(cmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// RenderError writes the two-part error output: the technical detail with
// its remediation block, then the short localized hint.
func RenderError(w io.Writer, err error) {
	localizer := i18n.GetLocalizer(i18n.DetectLanguage())
	detail, hint := errors.Render(err, localizer)
	fmt.Fprintf(w, "Error: %s\n", detail)
	if hint != "" {
		fmt.Fprintf(w, "\n%s\n", hint)
	}
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if opts.showVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "verto %s (%s)\n", version.Version, version.CommitHash)
		return nil
	}

	if err := i18n.Init(); err != nil {
		return err
	}
	localizer := i18n.GetLocalizer(i18n.DetectLanguage())

	// --list-models short-circuits every other check.
	if opts.listModels {
		printModelList(cmd.OutOrStdout(), localizer)
		return nil
	}

	c, err := container.BuildContainer()
	if err != nil {
		return err
	}

	var configManager *config.Manager
	if err := c.Invoke(func(m *config.Manager) { configManager = m }); err != nil {
		return dig.RootCause(err)
	}
	if err := applyOverrides(cmd, configManager, opts); err != nil {
		return err
	}
	utils.SetupLogger(configManager.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	text := strings.Join(args, " ")

	var result string
	err = c.Invoke(func(res *resolver.Resolver, tr *translator.Translator) error {
		resolved, err := res.Resolve(&resolver.Request{
			Text:   text,
			Model:  opts.model,
			URL:    opts.url,
			Key:    opts.key,
			Prompt: opts.prompt,
		})
		if err != nil {
			return err
		}
		result, err = tr.Translate(ctx, resolved)
		return err
	})
	if err != nil {
		return dig.RootCause(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// applyOverrides layers the flag values over the environment-derived
// configuration.
func applyOverrides(cmd *cobra.Command, configManager *config.Manager, opts *options) error {
	if opts.verbose {
		configManager.SetLogLevel("debug")
	}
	if cmd.Flags().Changed("timeout") {
		if opts.timeoutSeconds <= 0 {
			return errors.NewConfigError(fmt.Sprintf("--timeout must be positive, got %d", opts.timeoutSeconds))
		}
		configManager.SetRequestTimeout(time.Duration(opts.timeoutSeconds) * time.Second)
	}
	return nil
}

func printModelList(w io.Writer, localizer *goi18n.Localizer) {
	fmt.Fprintln(w, i18n.T(localizer, "list.header"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, errors.FormatModelGroups(registry.Default().GroupedByProvider()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, i18n.T(localizer, "list.default_model", map[string]any{"Model": registry.DefaultModel}))
	fmt.Fprintln(w, i18n.T(localizer, "list.keys_note"))
}
