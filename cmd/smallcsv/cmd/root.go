package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oleg578/smallcsv"
	"github.com/oleg578/smallcsv/internal/decode"
	"github.com/oleg578/smallcsv/internal/logger"
	"github.com/oleg578/smallcsv/internal/render"
)

var Version string

type Config struct {
	Raw      bool      `mapstructure:"raw"`
	Encoding string    `mapstructure:"encoding"`
	Format   string    `mapstructure:"format"`
	Log      LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command with its own viper instance, so tests can run
// it repeatedly.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "smallcsv [file]",
		Short: "Parse CSV and print its rows",
		Long: "Reads CSV from a file (or stdin when the file is omitted or \"-\") one row " +
			"at a time and prints every row. Quoted columns have their enclosing quotes " +
			"removed unless --raw is set.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &Config{}
			if err := v.Unmarshal(cfg); err != nil {
				return fmt.Errorf("unable to decode config: %w", err)
			}
			if err := logger.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
				return err
			}
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			return run(cmd, cfg, name)
		},
	}
	rootCmd.Version = version()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file")
	flags.Bool("raw", false, "keep the enclosing quotes of quoted columns")
	flags.String("encoding", decode.DefaultEncoding,
		fmt.Sprintf("input encoding [%s]", strings.Join(decode.Names(), "|")))
	flags.String("format", render.FormatJSON,
		fmt.Sprintf("output format [%s|%s]", render.FormatJSON, render.FormatTable))
	flags.String("log-format", logger.LogFormatTextValue,
		fmt.Sprintf("logging format [%s|%s]", logger.LogFormatTextValue, logger.LogFormatJsonValue))
	flags.String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)

	for key, flag := range map[string]string{
		"raw":        "raw",
		"encoding":   "encoding",
		"format":     "format",
		"log.format": "log-format",
		"log.level":  "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}

	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading from config file: %w", err)
		}
	}

	v.SetEnvPrefix("smallcsv")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

func run(cmd *cobra.Command, cfg *Config, name string) error {
	var in io.Reader = cmd.InOrStdin()
	if name != "-" {
		// The reader never closes its source.
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("unable to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	decoded, err := decode.NewReader(cfg.Encoding, in)
	if err != nil {
		return err
	}
	out, err := render.New(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	mode := smallcsv.StripQuotes
	if cfg.Raw {
		mode = smallcsv.RetainQuotes
	}

	r := smallcsv.NewReader(decoded)
	rows := 0
	for {
		row, err := r.ReadRow(mode)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("unable to read row %d from %s: %w", rows+1, name, err)
		}
		rows++
		log.Debug().Int("row", rows).Int("columns", len(row)).Msg("row parsed")
		if err := out.WriteRow(row); err != nil {
			return err
		}
	}

	if err := out.Flush(); err != nil {
		return err
	}
	log.Info().Str("file", name).Int("rows", rows).Msg("end of file reached")
	return nil
}

// LogError logs the error that ended the command, once. Parse errors carry
// their location as fields.
func LogError(err error) {
	event := log.Error()
	var perr *smallcsv.ParseError
	if errors.As(err, &perr) {
		event = event.Int("line", perr.Line).Int("column", perr.Column)
	}
	event.Err(err).Msg("")
}

func version() string {
	var commit, commitDate string
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				commit = setting.Value
			}
			if setting.Key == "vcs.time" {
				commitDate = setting.Value
			}
		}
	}
	if Version != "" {
		return fmt.Sprintf("%s %s %s", Version, commit, commitDate)
	}
	return fmt.Sprintf("%s %s", commit, commitDate)
}
