// Package main provides the CLI entrypoint for tuibee.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuibee/internal/config"
	"github.com/verte-zerg/tuibee/internal/logging"
	"github.com/verte-zerg/tuibee/internal/model"
	"github.com/verte-zerg/tuibee/internal/puzzle"
	"github.com/verte-zerg/tuibee/internal/session"
	"github.com/verte-zerg/tuibee/internal/stats"
	"github.com/verte-zerg/tuibee/internal/statsui"
	"github.com/verte-zerg/tuibee/internal/store"
	"github.com/verte-zerg/tuibee/internal/tui"
	"github.com/verte-zerg/tuibee/internal/wordlist"
)

const (
	defaultLang     = "en"
	defaultTimezone = "UTC"
	defaultHistory  = 30
)

var (
	playLang string
	playTZ   string
	playDict string

	statsLast  int
	statsPlain bool

	solveLang string
	solveDict string

	wordlistIn        string
	wordlistLang      string
	wordlistOut       string
	wordlistMinLength int
	wordlistForce     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuibee",
		Short:         "TUI spelling bee",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "language code (default: en)")
	rootCmd.Flags().StringVar(&playTZ, "tz", defaultTimezone, "reference timezone for the daily puzzle")
	rootCmd.Flags().StringVar(&playDict, "dict", "", "dictionary path override")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newWordlistCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &playLang, fileCfg.Game.Lang)
	applyStringConfig(cmd, "tz", &playTZ, fileCfg.Game.Timezone)
	applyStringConfig(cmd, "dict", &playDict, fileCfg.Game.Dictionary)

	cfg := model.Config{
		Lang:       playLang,
		Timezone:   playTZ,
		Dictionary: playDict,
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	dictPath := resolveDictionaryPath(cfg)
	words, err := wordlist.LoadWords(dictPath)
	if err != nil {
		return wordListLoadError(cfg.Lang, dictPath, err)
	}

	log, closeLog, err := logging.Open(config.DefaultLogPath())
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	seed := session.DaySeed(time.Now(), loc)
	sess, err := session.New(context.Background(), st, log, words, seed)
	if err != nil {
		var noPangram puzzle.NoPangramError
		if errors.As(err, &noPangram) {
			return fmt.Errorf("puzzle unavailable: dictionary %s has no 7-distinct-letter word", dictPath)
		}
		return fmt.Errorf("failed to start session: %w", err)
	}

	program := tea.NewProgram(tui.NewModel(sess), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", defaultHistory, "limit history to last N days")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	log, closeLog, err := logging.Open(config.DefaultLogPath())
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	gameStats := st.LoadStats(context.Background(), log)
	if statsPlain {
		return stats.RenderReport(cmd.OutOrStdout(), gameStats, statsLast)
	}

	program := tea.NewProgram(statsui.NewModel(gameStats), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <letters>",
		Short: "List playable words for a letter set (first letter is the center)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSolveCmd,
	}
	cmd.Flags().StringVar(&solveLang, "lang", defaultLang, "language code (default: en)")
	cmd.Flags().StringVar(&solveDict, "dict", "", "dictionary path override")
	return cmd
}

func runSolveCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &solveLang, fileCfg.Game.Lang)
	applyStringConfig(cmd, "dict", &solveDict, fileCfg.Game.Dictionary)

	letters := parseLetters(args)
	if len(letters) != puzzle.GameSize {
		return fmt.Errorf("expected %d letters, got %d", puzzle.GameSize, len(letters))
	}

	cfg := model.Config{Lang: solveLang, Dictionary: solveDict}
	dictPath := resolveDictionaryPath(cfg)
	words, err := wordlist.LoadWords(dictPath)
	if err != nil {
		return wordListLoadError(cfg.Lang, dictPath, err)
	}

	p, err := puzzle.FromLetters(words, letters[0], letters[1:])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	total := 0
	for _, word := range p.ValidWords {
		marker := ""
		isPangram := p.IsPangram(word)
		if isPangram {
			marker = "*"
		}
		points := puzzle.Score(word, isPangram)
		total += points
		if _, err := fmt.Fprintf(tw, "%s\t%d%s\t\n", word, points, marker); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "\t%d\t\n", total); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return tw.Flush()
}

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Clean a raw word list for play",
		Args:  cobra.NoArgs,
		RunE:  runWordlistCmd,
	}
	cmd.Flags().StringVar(&wordlistIn, "in", "", "raw word list path (.txt lines or .json array)")
	cmd.Flags().StringVar(&wordlistLang, "lang", defaultLang, "language code for the output file")
	cmd.Flags().StringVar(&wordlistOut, "out", "", "output path override")
	cmd.Flags().IntVar(&wordlistMinLength, "min-length", wordlist.DefaultMinLength, "minimum word length to keep")
	cmd.Flags().BoolVar(&wordlistForce, "force", false, "overwrite existing files")
	return cmd
}

func runWordlistCmd(_ *cobra.Command, _ []string) error {
	if wordlistIn == "" {
		return fmt.Errorf("--in is required")
	}
	raw, err := wordlist.LoadWords(wordlistIn)
	if err != nil {
		return fmt.Errorf("failed to load raw word list: %w", err)
	}
	cleaned := wordlist.Clean(raw, wordlistMinLength)
	if len(cleaned) == 0 {
		return fmt.Errorf("no words survived cleaning")
	}

	outPath := wordlistOut
	if outPath == "" {
		outPath = config.DefaultWordListPath(wordlistLang)
	}
	if !wordlistForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("word list already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat word list: %w", err)
		}
	}
	if err := writeWordList(outPath, cleaned); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logErrf("Kept %d of %d words\n", len(cleaned), len(raw))
	logErrf("Wrote %s\n", outPath)
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List installed dictionaries",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	wordlistDir := config.DefaultWordListDir()
	entries, err := os.ReadDir(wordlistDir)
	if err != nil {
		if os.IsNotExist(err) {
			logErrf("No dictionaries found. Clean one with: tuibee wordlist --in <raw> --lang <code>\n")
			return fmt.Errorf("wordlist directory does not exist")
		}
		return fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".txt" && ext != ".json" {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ext))
	}
	if len(langs) == 0 {
		logErrf("No dictionaries found. Clean one with: tuibee wordlist --in <raw> --lang <code>\n")
		return fmt.Errorf("no dictionaries found")
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// parseLetters flattens the argument list into runes, so both "abcdefg" and
// "a b c d e f g" work.
func parseLetters(args []string) []rune {
	var letters []rune
	for _, arg := range args {
		for _, r := range arg {
			if r == ' ' || r == ',' {
				continue
			}
			letters = append(letters, r)
		}
	}
	return letters
}

func resolveDictionaryPath(cfg model.Config) string {
	if cfg.Dictionary != "" {
		return cfg.Dictionary
	}
	txtPath := config.DefaultWordListPath(cfg.Lang)
	if _, err := os.Stat(txtPath); err == nil {
		return txtPath
	}
	jsonPath := strings.TrimSuffix(txtPath, ".txt") + ".json"
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath
	}
	return txtPath
}

func writeWordList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordlist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuibee configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# lang = %q          # Language code (default %q)
# timezone = %q     # Reference timezone for the daily puzzle
# dictionary = ""     # Dictionary path override (.txt lines or .json array)
`,
		defaultLang,
		defaultLang,
		defaultTimezone,
	)
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load dictionary: %v", err),
		fmt.Sprintf("expected dictionary at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Run: tuibee langs",
		fmt.Sprintf("Clean one: tuibee wordlist --in <raw> --lang %s", lang),
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
