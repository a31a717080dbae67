package cmd

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crossplay/crossword/internal/config"
	"github.com/crossplay/crossword/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile   string
	verbosity int

	cfg config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "crossword",
	Short: "Crossword puzzle generator and solver",
	Long: `crossword is a command-line tool for generating and solving crossword
puzzles with constraint-satisfaction search, and for inspecting the
lexicon and archive that back it.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(verbosity)
		if cfgFile != "" {
			if err := godotenv.Load(cfgFile); err != nil {
				log.WithError(err).Warn("could not read config file")
			}
		}
		cfg = config.Load()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a .env config file")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity level (0=errors only, 1=info, 2=debug)")
}
