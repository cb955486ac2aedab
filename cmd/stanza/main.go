package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/stanza"
	"github.com/iw2rmb/stanza/document"
	"github.com/iw2rmb/stanza/internal/cli"
	"github.com/iw2rmb/stanza/internal/ctxlog"
	"github.com/iw2rmb/stanza/poetry"
	"github.com/iw2rmb/stanza/project"
	"github.com/iw2rmb/stanza/theme"
	"github.com/iw2rmb/stanza/tools"
)

func main() {
	// Minimal logger until the log file is open.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	if opts.Version {
		fmt.Fprintln(outW, "stanza", stanza.VersionTag())
		return nil
	}

	logFile, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := cli.NewLogger(opts.LogLevel, opts.LogFormat, logFile)
	slog.SetDefault(logger)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m, err := setup(ctx, opts)
	if err != nil {
		return err
	}

	logger.Info("Editor starting.", "doc", opts.DocPath, "readonly", opts.ReadOnly)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// setup loads everything the editor needs and builds the root model.
func setup(ctx context.Context, opts *cli.Options) (model, error) {
	logger := ctxlog.FromContext(ctx)

	var title string
	if opts.ProjectPath != "" {
		p, err := project.Load(ctx, opts.ProjectPath)
		if err != nil {
			return model{}, err
		}
		plugins, err := p.Plugins(project.DefaultPlugins())
		if err != nil {
			return model{}, fmt.Errorf("project %s: %w", opts.ProjectPath, err)
		}
		for _, pl := range plugins {
			logger.Debug("Plugin enabled.", "name", pl.Name, "kind", pl.Kind)
		}
		title = p.Name
	}

	var th *theme.Theme
	if opts.ThemePath != "" {
		var err error
		if th, err = theme.Load(ctx, opts.ThemePath); err != nil {
			return model{}, err
		}
	}

	cfg, err := tools.Default(th)
	if err != nil {
		return model{}, err
	}
	if opts.ToolsPath != "" {
		o, err := tools.LoadOverrides(ctx, opts.ToolsPath)
		if err != nil {
			return model{}, err
		}
		if cfg, err = cfg.Apply(ctx, o); err != nil {
			return model{}, err
		}
	}
	if _, ok := cfg.Lookup(string(tools.KindPoetry)); !ok {
		return model{}, fmt.Errorf("poetry tool is disabled")
	}

	doc, err := document.Load(ctx, opts.DocPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("Document not found, starting a new one.", "path", opts.DocPath)
		doc = document.New()
	case err != nil:
		return model{}, err
	}
	if err := doc.Validate(cfg); err != nil {
		logger.Warn("Document has blocks of unregistered tools.", "error", err)
	}

	idx := doc.Index(string(tools.KindPoetry))
	created := idx < 0
	if created {
		if idx, err = doc.AppendPoetry(poetry.Data{}); err != nil {
			return model{}, err
		}
	}
	data, err := doc.Poetry(idx)
	if err != nil {
		return model{}, err
	}

	return newModel(ctx, modelConfig{
		Title:    title,
		Path:     opts.DocPath,
		Doc:      doc,
		Index:    idx,
		Data:     data,
		ReadOnly: opts.ReadOnly,
		Created:  created,
	}), nil
}
