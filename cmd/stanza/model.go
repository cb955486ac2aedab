package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/stanza/document"
	"github.com/iw2rmb/stanza/internal/ctxlog"
	"github.com/iw2rmb/stanza/poetry"
)

type keyMap struct {
	Save  key.Binding
	Quit  key.Binding
	block poetry.KeyMap
}

func (k keyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Save, k.Quit}, k.block.ShortHelp()...)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Save, k.Quit}}, k.block.FullHelp()...)
}

type modelConfig struct {
	Title    string
	Path     string
	Doc      *document.Document
	Index    int
	Data     poetry.Data
	ReadOnly bool

	// Created marks a poetry block appended at load; the document needs a
	// write even without edits.
	Created bool
}

type model struct {
	ctx   context.Context
	cfg   modelConfig
	block poetry.Block
	help  help.Model
	keys  keyMap

	dirty  bool
	status string
	err    error
}

var statusStyle = lipgloss.NewStyle().Faint(true)

func newModel(ctx context.Context, cfg modelConfig) model {
	m := model{ctx: ctx, cfg: cfg, help: help.New(), dirty: cfg.Created}
	m.block = poetry.New(poetry.Config{
		Data:         cfg.Data,
		ReadOnly:     cfg.ReadOnly,
		ShowLineNums: true,
		Style:        poetry.DefaultStyle(),
		Logger:       ctxlog.FromContext(ctx),
	})
	m.keys = keyMap{
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "save & quit")),
		block: poetry.DefaultKeyMap(),
	}
	return m
}

func (m model) Init() tea.Cmd { return m.block.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.block = m.block.SetSize(msg.Width, max(msg.Height-2, 0))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m.save()
			return m, tea.Quit
		}
	}

	before := m.block.Buffer().Version()
	var cmd tea.Cmd
	m.block, cmd = m.block.Update(msg)
	if m.block.Buffer().Version() != before {
		m.dirty = true
		m.status = ""
	}
	return m, cmd
}

// save writes the block back into the document and the document to disk.
// Read-only sessions never write.
func (m *model) save() {
	if m.cfg.ReadOnly || !m.dirty {
		return
	}
	logger := ctxlog.FromContext(m.ctx)
	if err := m.cfg.Doc.SetPoetry(m.cfg.Index, m.block.Save()); err != nil {
		m.err = err
		m.status = "save failed: " + err.Error()
		logger.Error("Save failed.", "error", err)
		return
	}
	if err := m.cfg.Doc.Save(m.ctx, m.cfg.Path); err != nil {
		m.err = err
		m.status = "save failed: " + err.Error()
		logger.Error("Save failed.", "error", err)
		return
	}
	m.dirty = false
	m.err = nil
	m.status = "saved"
	logger.Info("Document saved.", "path", m.cfg.Path)
}

func (m model) View() string {
	parts := []string{filepath.Base(m.cfg.Path)}
	if m.cfg.Title != "" {
		parts = append([]string{m.cfg.Title}, parts...)
	}
	switch {
	case m.cfg.ReadOnly:
		parts = append(parts, "read-only")
	case m.dirty:
		parts = append(parts, "modified")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	c := m.block.Buffer().Cursor()
	parts = append(parts, fmt.Sprintf("%d:%d", c.Row+1, c.Col+1))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.block.View(),
		statusStyle.Render(strings.Join(parts, " | ")),
		m.help.View(m.keys),
	)
}
