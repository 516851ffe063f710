package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vladimir-rom/blueorgreen/cmd/config"
	"github.com/vladimir-rom/blueorgreen/colors"
	"github.com/vladimir-rom/blueorgreen/properties"
)

const (
	keyNoColor = "no-color"
	keyVerbose = "verbose"
)

func Execute() {
	var rootCmd = createRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type appParams struct {
	configFile   string
	envPrefix    string
	reg          *config.Registry
	noColor      func() bool
	verbose      func() bool
	colorBuilder colors.ColorBuilder
	colorEnabled bool
}

func createRootCmd() *cobra.Command {
	return newRootCmd(&appParams{
		colorBuilder: colors.DefaultColorBuilder,
		colorEnabled: !color.NoColor,
	})
}

func newRootCmd(params *appParams) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:           "blueorgreen [flags]",
		Short:         "blueorgreen prints the configured deployment color",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := params.load(cmd)
			if err != nil {
				return err
			}
			return app.printColor(cmd.OutOrStdout())
		},
	}

	fs := rootCmd.PersistentFlags()
	params.reg = config.NewRegistry(koanf.New("."), fs)

	fs.StringVar(
		&params.configFile,
		"config",
		"",
		"path to a YAML configuration file")

	fs.StringVar(
		&params.envPrefix,
		"env-prefix",
		"",
		"prefix of environment variables, e.g. BLUEORGREEN_ binds BLUEORGREEN_COLOR")

	params.reg.StringP(
		config.KeyColor,
		"c",
		"",
		"deployment color, overrides the config file and the COLOR environment variable")

	params.noColor = params.reg.Bool(
		keyNoColor,
		false,
		"disable colored output")

	params.verbose = params.reg.BoolP(
		keyVerbose,
		"v",
		false,
		"log configuration loading details to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "palette",
		Short: "list known color names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := params.load(cmd)
			if err != nil {
				return err
			}
			return app.printPalette(cmd.OutOrStdout())
		},
	})

	return rootCmd
}

type app struct {
	props     *properties.ColorProperties
	colorizer *colors.Colorizer
	logger    zerolog.Logger
}

func (p *appParams) load(cmd *cobra.Command) (*app, error) {
	// verbose may come from the config file, so layer logs are held back
	// until it is known.
	var layerLog bytes.Buffer
	err := config.Load(p.reg.Koanf(), cmd.Flags(), config.LoadOptions{
		ConfigFile: p.configFile,
		EnvPrefix:  p.envPrefix,
		EnvKeys:    []string{config.KeyColor},
	}, newLogger(&layerLog).Level(zerolog.DebugLevel))

	verbose := p.verbose()
	if err != nil {
		verbose, _ = cmd.Flags().GetBool(keyVerbose)
	}
	if verbose {
		if _, copyErr := io.Copy(cmd.ErrOrStderr(), &layerLog); copyErr != nil && err == nil {
			err = copyErr
		}
	}
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr()).Level(zerolog.InfoLevel)
	if verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	k := p.reg.Koanf()
	palette, err := config.LoadPalette(k)
	if err != nil {
		return nil, err
	}

	colorizer := colors.NewColorizer(palette, p.colorBuilder)
	colorizer.Enabled = p.colorEnabled && !p.noColor()

	props := config.BindColorProperties(k)
	logger.Debug().
		Str("color", props.Color()).
		Int("palette_size", len(palette)).
		Msg("color properties bound")

	return &app{
		props:     props,
		colorizer: colorizer,
		logger:    logger,
	}, nil
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Timestamp().
		Logger()
}

func (a *app) printColor(w io.Writer) error {
	value := a.props.Color()
	if value == "" {
		a.logger.Warn().Msg("color is not configured")
	}
	_, err := fmt.Fprintln(w, a.colorizer.ForColor(value)(value))
	return err
}

func (a *app) printPalette(w io.Writer) error {
	for _, name := range a.colorizer.Known() {
		if _, err := fmt.Fprintln(w, a.colorizer.ForColor(name)(name)); err != nil {
			return err
		}
	}
	return nil
}
