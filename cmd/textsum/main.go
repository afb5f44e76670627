package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"textsum/internal/config"
	"textsum/internal/domain"
	"textsum/internal/language"
	"textsum/internal/logger"
	"textsum/internal/report"
	"textsum/internal/sample"
	"textsum/internal/service"
	"textsum/internal/summarizer"
	"textsum/internal/tui"
)

type flags struct {
	configPath   string
	ratio        float64
	maxSentences int
	preset       string
	text         string
	useSample    bool
	format       string
	explain      bool
	interactive  bool
	showOriginal bool
	logLevel     string
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "textsum [file ...]",
		Short: "Extractive text summarizer",
		Long: `textsum picks the most important sentences of a text and returns them in
their original order, together with compression statistics.

Sentences are ranked by word frequency (stop words removed, words stemmed)
plus bonuses for position, length, numbers, proper nouns and emphasis.

Examples:
  textsum article.txt
  textsum --preset short notes/*.md
  textsum --text "First sentence. Second one. Third one." --ratio 0.5
  textsum -i`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "Path to YAML config file (default ./config.yaml or ~/.config/textsum/config.yaml)")
	fl.Float64Var(&f.ratio, "ratio", 0, "Fraction of sentences to keep, in (0, 1]")
	fl.IntVar(&f.maxSentences, "max-sentences", 0, "Upper bound on summary sentences")
	fl.StringVar(&f.preset, "preset", "", "Budget preset: short, medium or long")
	fl.StringVar(&f.text, "text", "", "Summarize this literal text")
	fl.BoolVar(&f.useSample, "sample", false, "Summarize the built-in sample article")
	fl.StringVar(&f.format, "format", "text", "Output format: text or yaml")
	fl.BoolVar(&f.explain, "explain", false, "Print per-sentence score breakdowns")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "Start the interactive terminal UI")
	fl.BoolVar(&f.showOriginal, "show-original", false, "Print the original text above the summary")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		logger.New(f.logLevel, cmd.ErrOrStderr()).Error("config setup failed", "err", err)
		return err
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	lg := logger.New(cfg.Logging.Level, cmd.ErrOrStderr())

	if f.format != "text" && f.format != "yaml" {
		err := fmt.Errorf("%w: unknown format %q (want text or yaml)", domain.ErrInvalidRequest, f.format)
		lg.Error("invalid output settings", "err", err)
		return err
	}

	req, err := resolveRequest(cmd, f, cfg)
	if err != nil {
		lg.Error("invalid summary settings", "err", err)
		return err
	}

	lang, err := language.Lookup(cfg.Summarizer.Language)
	if err != nil {
		lg.Error("language setup failed", "err", err)
		return err
	}
	ext, err := summarizer.New(lang, cfg.Summarizer.Weights, summarizer.WithLengthProfile(cfg.Summarizer.Length))
	if err != nil {
		lg.Error("summarizer setup failed", "err", err)
		return err
	}
	svc := service.NewSummaryService(ext, lg, service.Options{
		Concurrency: cfg.Service.Concurrency,
		Extensions:  cfg.Service.Extensions,
		MinChars:    cfg.Summarizer.MinChars,
	})

	if f.interactive {
		var initial []tui.Entry
		if f.useSample {
			initial = append(initial, tui.Entry{Title: sample.Name, Text: sample.Text()})
		}
		m := tui.New(svc, req, cfg.Summarizer.MinChars, initial...)
		if _, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run(); err != nil {
			lg.Error("interactive session failed", "err", err)
			return err
		}
		return nil
	}

	switch {
	case f.text != "":
		r, err := svc.SummarizeText(f.text, req)
		if err != nil {
			lg.Error("summarize failed", "err", err)
			return err
		}
		return emit(cmd, f, ext, []service.Report{r}, []string{"Text"})
	case len(args) > 0:
		docs, err := svc.LoadDocuments(args)
		if err != nil {
			lg.Error("load failed", "err", err)
			return err
		}
		lg.Info("summarizing documents", "count", len(docs), "ratio", req.Ratio, "max_sentences", req.MaxSentences)
		reports, err := svc.SummarizeDocuments(cmd.Context(), docs, req)
		if err != nil {
			lg.Error("summarize failed", "err", err)
			return err
		}
		titles := make([]string, len(docs))
		for i, d := range docs {
			titles[i] = d.Path
		}
		return emit(cmd, f, ext, reports, titles)
	case f.useSample || f.preset != "" || cmd.Flags().Changed("ratio") || cmd.Flags().Changed("max-sentences"):
		r, err := svc.SummarizeText(sample.Text(), req)
		if err != nil {
			lg.Error("summarize failed", "err", err)
			return err
		}
		return emit(cmd, f, ext, []service.Report{r}, []string{sample.Name})
	default:
		lg.Info("no input given, summarizing the built-in sample with every preset")
		reports, titles, err := presetDemo(svc)
		if err != nil {
			lg.Error("summarize failed", "err", err)
			return err
		}
		return emit(cmd, f, ext, reports, titles)
	}
}

// presetDemo summarizes the sample article once per preset.
func presetDemo(svc *service.SummaryService) ([]service.Report, []string, error) {
	reports := make([]service.Report, 0, len(config.Presets))
	titles := make([]string, 0, len(config.Presets))
	for _, p := range config.Presets {
		r, err := svc.SummarizeText(sample.Text(), p.Request())
		if err != nil {
			return nil, nil, err
		}
		reports = append(reports, r)
		titles = append(titles, fmt.Sprintf("%s summary (%.0f%%, max %d sentences)", p.Name, p.Ratio*100, p.MaxSentences))
	}
	return reports, titles, nil
}

func emit(cmd *cobra.Command, f *flags, ext *summarizer.Extractive, reports []service.Report, titles []string) error {
	out := cmd.OutOrStdout()
	if f.format == "yaml" {
		data, err := report.YAML(reports)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	for i, r := range reports {
		fmt.Fprintln(out, report.Render(titles[i], r, report.Options{ShowOriginal: f.showOriginal}))
		if f.explain && len(r.Summary.Sentences) > 0 {
			sents, _, err := ext.Explain(r.Document.Content)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, report.Explain(sents, r.Summary.Sentences))
		}
	}
	return nil
}

func loadConfig(path string) (*config.AppConfig, error) {
	var cfg *config.AppConfig
	var err error
	if path == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveRequest layers preset and explicit flags over the configured budget.
func resolveRequest(cmd *cobra.Command, f *flags, cfg *config.AppConfig) (domain.SummaryRequest, error) {
	req := cfg.Summarizer.Request()
	if f.preset != "" {
		p, ok := config.LookupPreset(f.preset)
		if !ok {
			return req, fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidRequest, f.preset)
		}
		req = p.Request()
	}
	if cmd.Flags().Changed("ratio") {
		req.Ratio = f.ratio
	}
	if cmd.Flags().Changed("max-sentences") {
		req.MaxSentences = f.maxSentences
	}
	return req, req.Validate()
}
