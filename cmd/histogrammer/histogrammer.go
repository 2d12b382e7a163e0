package histogrammer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/histogrammer/logging"
	"github.com/dasdy/histogrammer/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const noInputHint = "Please provide a path to a text file as an argument, --help for more details"

var logCtx = logging.PackageCtx("cmd")

type settings struct {
	cfgFile  string
	rows     positiveInt
	stride   positiveInt
	marker   string
	color    string
	progress bool
	verbose  bool
}

// NewRootCmd builds the histogrammer command with its own config instance.
func NewRootCmd() *cobra.Command {
	s := &settings{
		rows:   model.DefaultRows,
		stride: model.DefaultTickStride,
	}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "histogrammer input_file_path",
		Short: "Print a histogram of the letters in a text file",
		Long: `Prints histogram of characters in text file at input_file_path.
Letters are counted case-insensitively, everything else is ignored.
The chart has row_count rows and a tick label every tick_stride rows,
counting from the top. Arguments must be positive integers.`,
		Example: `  histogrammer book.txt
  histogrammer book.txt -r 20 -s 5`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, s.cfgFile); err != nil {
				return err
			}

			if err := bindFlags(cmd, v); err != nil {
				return err
			}

			level := slog.LevelWarn
			if s.verbose {
				level = slog.LevelDebug
			}

			slog.SetDefault(logging.NewLogger(cmd.ErrOrStderr(), level))
			slog.DebugContext(logCtx, "Config loaded", "file", v.ConfigFileUsed(), "settings", v.AllSettings())

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := model.LayoutParams{Rows: int(s.rows), TickStride: int(s.stride)}
			if err := layout.Validate(); err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), noInputHint)

				return nil
			}

			return run(cmd, args[0], layout, s)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&s.cfgFile, "config", "", "config file (default is $HOME/.histogrammer.toml)")
	flags.VarP(&s.rows, "rows", "r", "override row_count, program draws row_count rows of text-based histogram")
	flags.VarP(&s.stride, "stride", "s", "override tick_stride, program draws a tick every tick_stride rows")
	flags.StringVarP(&s.marker, "marker", "m", "*", "character used for filled cells")
	flags.StringVar(&s.color, "color", "", "colour of filled cells, ANSI number or hex (e.g. 205, #ff8800)")
	flags.BoolVar(&s.progress, "progress", false, "show a progress bar while reading the input file")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "If provided, debug output will be shown")

	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag. Unlike the default locations, it has to exist.
		if _, err := os.Stat(cfgFile); err != nil {
			return fmt.Errorf("could not read config file: %w", err)
		}

		v.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory and working directory with name ".histogrammer".
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}

		v.AddConfigPath(".")
		v.SetConfigType("toml")
		v.SetConfigName(".histogrammer")
	}

	v.SetEnvPrefix("histogrammer")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}

		return fmt.Errorf("could not read config file: %w", err)
	}

	return nil
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == "config" || f.Name == "help" {
			return
		}

		// Viper compares case-insensitively, so only the hyphens need to go.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)

			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				bindErr = fmt.Errorf("invalid config value %v for %s: %w", val, configName, err)
			}
		}
	})

	return bindErr
}
