package commands

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"autocomplete/internal/autocomplete"
	"autocomplete/internal/config"
	"autocomplete/internal/logging"
	"autocomplete/internal/provider"
	"autocomplete/internal/ui"
)

// Version is set at build time.
var Version = "0.1.0"

// e2eEnv makes the program announce when it is about to take the terminal
const e2eEnv = "AUTOCOMPLETE_E2E_TEST"

// flags holds the root command's flag values
type flags struct {
	configPath string
	wordsFile  string
	root       string
	classes    []string
	id         string
}

var rootFlags flags

var rootCmd = &cobra.Command{
	Use:     "autocomplete [text]",
	Short:   "Text input with a live completion dropdown",
	Long:    "autocomplete shows a text input and, below it, every completion the configured provider offers for what has been typed so far.",
	Version: Version,
	Args:    cobra.ArbitraryArgs,

	// Runtime errors are not usage errors
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, strings.Join(args, " "))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "config file (default is the user config dir)")
	rootCmd.Flags().StringVar(&rootFlags.wordsFile, "words", "", "complete from a YAML word list")
	rootCmd.Flags().StringVar(&rootFlags.root, "root", "", "complete paths under this directory")
	rootCmd.Flags().StringSliceVar(&rootFlags.classes, "classes", nil, "style classes for the dropdown")
	rootCmd.Flags().StringVar(&rootFlags.id, "id", "completions", "dropdown identifier")
	rootCmd.MarkFlagsMutuallyExclusive("words", "root")

	rootCmd.AddCommand(initConfigCmd)
}

func configService() config.ConfigService {
	if rootFlags.configPath != "" {
		return config.NewConfigServiceAt(rootFlags.configPath)
	}
	return config.NewConfigService()
}

// loadConfig loads the config file and applies command line overrides
func loadConfig(f flags) (*config.Config, error) {
	cfg, err := configService().Load()
	if err != nil {
		return nil, err
	}

	switch {
	case f.wordsFile != "":
		cfg.Provider.Kind = config.ProviderWords
		cfg.Provider.WordsFile = f.wordsFile
	case f.root != "":
		cfg.Provider.Kind = config.ProviderPaths
		cfg.Provider.Root = f.root
	}
	return cfg, nil
}

// newProvider builds the result provider the config asks for
func newProvider(settings config.ProviderSettings) (autocomplete.ResultProvider, error) {
	switch settings.Kind {
	case config.ProviderPaths:
		paths, err := provider.NewPaths(settings.Root, settings.MaxResults)
		if err != nil {
			return nil, err
		}
		log.Printf("Completing paths under %s", paths.Root())
		return paths, nil
	case config.ProviderWords:
		if settings.WordsFile == "" {
			return provider.DefaultWordList(settings.MaxResults)
		}
		return provider.LoadWordList(settings.WordsFile, settings.MaxResults)
	default:
		return nil, fmt.Errorf("unknown provider kind %q", settings.Kind)
	}
}

func runInteractive(cmd *cobra.Command, value string) error {
	cfg, err := loadConfig(rootFlags)
	if err != nil {
		return err
	}

	logCloser := logging.Setup(cfg.Log)
	defer logCloser.Close()

	results, err := newProvider(cfg.Provider)
	if err != nil {
		return err
	}

	model, err := ui.NewModel(ui.Options{
		Config:   cfg,
		Provider: results,
		ID:       rootFlags.id,
		Classes:  rootFlags.classes,
		Value:    value,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if os.Getenv(e2eEnv) == "1" {
		fmt.Fprintln(cmd.OutOrStdout(), "__READY__")
	}

	log.Printf("Starting with %s provider", cfg.Provider.Kind)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	if err := model.Err(); err != nil {
		var attachErr *autocomplete.AttachError
		if errors.As(err, &attachErr) {
			return fmt.Errorf("configuration error: %w", err)
		}
		return err
	}
	return nil
}
