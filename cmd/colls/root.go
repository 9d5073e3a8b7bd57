package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jctratt/colls/pkg/colls/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "colls [flags] [path...]",
		Short: "Reformat ls -l output with selectable columns",
		Long: `Colls wraps ls -l and reformats its output into a user-selected,
aligned, reordered table while keeping the colors ls applies to
symlinks and directories.

Columns:
  1 permissions   2 links   3 owner   4 group   5 size
  6 month         7 day     8 time/year
  9 filename      0 arrow ( -> )      * symlink target

Examples:
  colls                      # All columns for the current directory
  colls -f 951 ~/src         # Filename, size, permissions
  colls -f "9_5_1" --header  # Same, with _ separators and a header row
  colls -f "9 - 5" -Q        # Custom separator, keep ls -Q quoting
  colls --watch ~/Downloads  # Re-list whenever the directory changes

Flags meant for ls itself can follow the first path or a -- marker.`,
		Args: cobra.ArbitraryArgs,
		RunE: runList,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Stop flag parsing at the first positional argument so trailing ls
	// flags pass through untouched.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/colls/config.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "", `column selection with embedded separators (e.g. "951", "9_5_1")`)
	rootCmd.PersistentFlags().BoolP("quotes", "Q", false, "keep the quotes ls -Q puts around filenames")
	rootCmd.PersistentFlags().Bool("header", false, "print a header row of column identifiers")
	rootCmd.PersistentFlags().Int("max-pad", config.DefaultMaxPad, "reverse-highlight padding this wide or wider (0 disables)")
	rootCmd.PersistentFlags().String("color", config.DefaultColorMode, "color mode passed to ls: auto, always, never")
	rootCmd.PersistentFlags().BoolP("watch", "w", false, "re-list when a listed directory changes")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress the trailing count line and console logging")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("quotes", rootCmd.PersistentFlags().Lookup("quotes"))
	_ = viper.BindPFlag("header", rootCmd.PersistentFlags().Lookup("header"))
	_ = viper.BindPFlag("max_pad", rootCmd.PersistentFlags().Lookup("max-pad"))
	_ = viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	_ = viper.BindPFlag("watch", rootCmd.PersistentFlags().Lookup("watch"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		viper.AddConfigPath(config.ConfigDir())
		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "colls"))
		}
	}

	viper.SetEnvPrefix("COLLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
