package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/Hanaasagi/termlex/cmd"
	"github.com/Hanaasagi/termlex/internal/logger"
	"github.com/Hanaasagi/termlex/internal/render"
	"github.com/Hanaasagi/termlex/internal/view"
	"github.com/Hanaasagi/termlex/pkg/lexer"
	"github.com/adrg/xdg"
	"github.com/fatih/color"
	ansi "github.com/leaanthony/go-ansi-parser"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName     = "termlex"
	defaultSize = 4096
)

var (
	Version     = "0.1.0"
	CommitSha   = "unknown"
	FullVersion = Version + "-" + CommitSha
)

var appDir = filepath.Join(xdg.StateHome, appName)

func init() {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		panic(fmt.Sprintf("Error creating state directory: %v", err))
	}

	logFilePath := filepath.Join(appDir, appName+".log")
	if err := logger.Init(logFilePath, "info"); err != nil {
		panic(fmt.Sprintf("Error initializing logger: %v", err))
	}

	// Initialize crash reporting
	crashFilePath := filepath.Join(appDir, "crash")
	if f, err := os.Create(crashFilePath); err == nil {
		_ = debug.SetCrashOutput(f, debug.CrashOptions{})
	}
}

// AppConfig holds application configuration
type AppConfig struct {
	inputFile       string
	target          string
	valueSeparate   bool
	escapeSequences bool
	strip           bool
	pager           bool
	colorMode       string
	showVersion     bool
}

// readInput reads the whole input from file or stdin with buffering
func readInput(inputFile string) (string, error) {
	var reader io.Reader
	var closer io.Closer

	if inputFile != "" {
		file, err := os.Open(inputFile)
		if err != nil {
			return "", fmt.Errorf("opening input file: %w", err)
		}
		reader = file
		closer = file
	} else {
		reader = os.Stdin
	}

	defer func() {
		if closer != nil {
			closer.Close() // nolint: errcheck
		}
	}()

	data, err := io.ReadAll(bufio.NewReaderSize(reader, defaultSize))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// colorsEnabled decides whether styled output goes to the writer
func colorsEnabled(mode, target string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if target != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// runApp runs the main application logic
func runApp(config *AppConfig, colors map[string]string) error {
	if config.showVersion {
		fmt.Printf("%s version: %s\n", appName, FullVersion)
		return nil
	}

	text, err := readInput(config.inputFile)
	if err != nil {
		return err
	}

	if config.strip && ansi.HasEscapeCodes(text) {
		cleansed, err := ansi.Cleanse(text)
		if err != nil {
			return fmt.Errorf("stripping escape sequences: %w", err)
		}
		text = cleansed
	}

	styler := lexer.NewStringStyler(text)
	styler.SetProperty(lexer.PropValueSeparate, boolToInt(config.valueSeparate))
	styler.SetProperty(lexer.PropEscapeSequences, boolToInt(config.escapeSequences))
	lexer.New().Run(0, len(text), styler)
	spans := styler.Spans()

	slog.Info("classified input", "bytes", len(text), "spans", len(spans))

	if config.pager {
		return view.Present(text, spans)
	}

	renderer := render.New(colorsEnabled(config.colorMode, config.target))
	for styleName, colorName := range colors {
		if err := renderer.SetStyleColor(styleName, colorName); err != nil {
			return fmt.Errorf("applying color config: %w", err)
		}
	}

	if config.target == "" {
		return renderer.Render(os.Stdout, text, spans)
	}

	file, err := os.Create(config.target)
	if err != nil {
		return fmt.Errorf("creating target file: %w", err)
	}
	defer file.Close() // nolint: errcheck

	writer := bufio.NewWriterSize(file, defaultSize)
	if err := renderer.Render(writer, text, spans); err != nil {
		return err
	}
	return writer.Flush()
}

func main() {
	fileConfig, err := LoadConfigFromFile(filepath.Join(xdg.ConfigHome, appName, "config.toml"))
	if err != nil {
		slog.Warn("Falling back to default config", "error", err)
		fileConfig = NewDefaultConfig()
	}
	if fileConfig.Core.LogLevel != "info" {
		if err := logger.Init(filepath.Join(appDir, appName+".log"), fileConfig.Core.LogLevel); err != nil {
			slog.Warn("Keeping default log level", "error", err)
		}
	}

	config := &AppConfig{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Syntax highlighter for build and console output",
		Long: color.New(color.FgHiMagenta).Sprintf(
			"Classify compiler diagnostics, diffs and stack traces and highlight them in your terminal. %s",
			color.New(color.FgBlue).Sprintf("(%s)", FullVersion),
		),
		Example: `  make 2>&1 | termlex
  termlex -i build.log --value-separate
  git diff | termlex --pager`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(config, fileConfig.Colors)
		},
	}

	rootCmd.Flags().StringVarP(&config.inputFile, "input-file", "i", "", "Read input from file instead of stdin")
	rootCmd.Flags().StringVarP(&config.target, "target", "t", "", "Write output to the specified path")
	rootCmd.Flags().BoolVar(&config.valueSeparate, "value-separate", fileConfig.Lexer.ValueSeparate, "Style the location prefix of diagnostics separately")
	rootCmd.Flags().BoolVarP(&config.escapeSequences, "escape-sequences", "e", fileConfig.Lexer.EscapeSequences, "Interpret ANSI escape sequences in the input")
	rootCmd.Flags().BoolVarP(&config.strip, "strip", "s", false, "Strip ANSI escape sequences before classifying")
	rootCmd.Flags().BoolVarP(&config.pager, "pager", "p", false, "Show the result in a full-screen pager")
	rootCmd.Flags().StringVar(&config.colorMode, "color", fileConfig.Core.Color, "Colorize output: auto, always or never")
	rootCmd.Flags().BoolVarP(&config.showVersion, "version", "v", false, "Print version and exit")

	rootCmd.SetHelpTemplate(cmd.HelpTemplate)
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		return cmd.ColorUsageFunc(c.OutOrStderr(), c)
	})

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Error executing command", "error", err)
		os.Exit(1)
	}
}
