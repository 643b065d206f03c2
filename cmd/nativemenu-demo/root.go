package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/quasilyte/gdata/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const appName = "nativemenu_demo"

var cfgFile string

type demoFlags struct {
	themePath  string
	language   string
	logPath    string
	logLevel   string
	evdev      string
	width      int32
	height     int32
	fullscreen bool
	cannoli    bool
	arrows     bool
	noSave     bool
}

var flags demoFlags

var rootCmd = &cobra.Command{
	Use:   "nativemenu-demo",
	Short: "Interactive demo of the nativemenu toolkit",
	Long: `nativemenu-demo opens an options menu with list, toggle, stepper,
dynamic and submenu rows. Values are saved to the user data directory
when leaving through "Save and exit".`,
	PersistentPreRun: bindFlags,
	SilenceUsage:     true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return run(flags)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nativemenu.toml)")

	f := rootCmd.Flags()
	f.StringVar(&flags.themePath, "theme", "", "TOML theme file")
	f.StringVar(&flags.language, "lang", "", "language for built-in strings (en, es, de)")
	f.StringVar(&flags.logPath, "log-path", "", "log file path")
	f.StringVar(&flags.logLevel, "log-level", "info", "application log level")
	f.StringVar(&flags.evdev, "evdev", "", "raw input device, e.g. /dev/input/event1")
	f.Int32Var(&flags.width, "width", 0, "window width")
	f.Int32Var(&flags.height, "height", 0, "window height")
	f.BoolVar(&flags.fullscreen, "fullscreen", false, "start fullscreen")
	f.BoolVar(&flags.cannoli, "cannoli", false, "use the Cannoli colours and font")
	f.BoolVar(&flags.arrows, "arrows", false, "keep slidable arrows visible on every row")
	f.BoolVar(&flags.noSave, "no-save", false, "do not read or write saved settings")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".nativemenu")
	}

	viper.SetEnvPrefix("nativemenu")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("Error reading config file", "error", err)
			os.Exit(1)
		}
	}
}

// bindFlags copies config and environment values into flags the user did
// not set explicitly.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !viper.IsSet(f.Name) {
			return
		}

		val := viper.Get(f.Name)
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			slog.Error("Error applying config value", "flag", f.Name, "error", err)
			os.Exit(1)
		}
	})
}

func run(f demoFlags) error {
	if err := nativemenu.Init(nativemenu.Options{
		WindowTitle: "nativemenu demo",
		WindowOptions: nativemenu.WindowOptions{
			Resizable:         true,
			FullscreenDesktop: f.fullscreen,
			Width:             f.width,
			Height:            f.height,
		},
		ThemePath:   f.themePath,
		Language:    f.language,
		LogPath:     f.logPath,
		LogLevel:    f.logLevel,
		EvdevDevice: f.evdev,
		IsCannoli:   f.cannoli,
	}); err != nil {
		return err
	}
	defer nativemenu.Close()

	logger := nativemenu.GetLogger()

	var store *gdata.Manager
	if !f.noSave {
		var err error
		store, err = gdata.Open(gdata.Config{AppName: appName})
		if err != nil {
			// Settings still work for this run.
			logger.Warn("Saved settings unavailable", "error", err)
		}
	}

	settings, err := NewSettingsManager(store)
	if err != nil {
		return err
	}
	if f.arrows {
		settings.Settings().ArrowsAlwaysVisible = true
	}

	pool := buildMenus(nativemenu.DefaultStyle(), settings)

	logger.Info("Starting demo", "arrows_always_visible", settings.Settings().ArrowsAlwaysVisible)

	return nativemenu.Run(pool)
}
