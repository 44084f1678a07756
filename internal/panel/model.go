// Package panel is an interactive terminal control surface for a denoise
// pipeline.
package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/algo-denoise/dsp/core"
	"github.com/cwbudde/algo-denoise/dsp/denoise"
)

// alphaScale is the noise alpha shown as a full bar.
const alphaScale = 2.0

// Model is the Bubbletea model for the denoise panel.
type Model struct {
	pipeline *denoise.Pipeline
	fields   []field
	keys     keyMap
	help     help.Model
	alphaBar progress.Model
	gammaBar progress.Model

	cursor   int
	width    int
	err      error
	quitting bool
}

// New creates a panel driving p. Every edit is clamped and applied with
// [denoise.Pipeline.Update].
func New(p *denoise.Pipeline) Model {
	return Model{
		pipeline: p,
		fields:   defaultFields(),
		keys:     defaultKeys(),
		help:     help.New(),
		alphaBar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(30)),
		gammaBar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(30)),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("denoise")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := core.Clamp(float64(msg.Width-30), 10, 60)
		m.alphaBar.Width = int(w)
		m.gammaBar.Width = int(w)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Left):
			m.edit(m.fields[m.cursor], -1)
		case key.Matches(msg, m.keys.Right):
			m.edit(m.fields[m.cursor], 1)
		case key.Matches(msg, m.keys.Toggle):
			m.edit(m.fields[len(m.fields)-1], 1)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) edit(f field, dir int) {
	prev := m.pipeline.Config()
	next := prev
	f.adjust(&next, dir)
	_, m.err = m.pipeline.Update(next.Clamp(prev))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cfg := m.pipeline.Config()
	var b strings.Builder

	b.WriteString("\n  " + headerStyle.Render("spectral denoise") + "\n\n")
	for i, f := range m.fields {
		cursor := "  "
		label := labelStyle.Render(fmt.Sprintf("%-14s", f.label))
		if i == m.cursor {
			cursor = "› "
			label = selectedStyle.Render(fmt.Sprintf("%-14s", f.label))
		}
		b.WriteString("  " + cursor + label + " " + valueStyle.Render(f.format(cfg)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + labelStyle.Render("alpha ") + m.alphaBar.ViewAs(core.Clamp(cfg.NoiseAlpha/alphaScale, 0, 1)) + "\n")
	b.WriteString("  " + labelStyle.Render("gamma ") + m.gammaBar.ViewAs(core.Clamp(cfg.Gamma, 0, 1)) + "\n")

	b.WriteString("\n")
	r := m.pipeline.Report()
	if r.DeltaDefined {
		b.WriteString(fmt.Sprintf("  delta %.6f (%.1f dB)\n", r.Delta, r.DeltaDB))
	} else {
		b.WriteString("  delta undefined (silent signal)\n")
	}
	b.WriteString(fmt.Sprintf("  snr in %.1f dB  out %.1f dB\n", r.InputSNRdB, r.OutputSNRdB))
	b.WriteString(fmt.Sprintf("  band k=%d  zeroed %d  peak %.1f Hz\n", r.RetainedHalfBandwidth, r.ZeroedBins, r.PeakFrequency))

	if m.err != nil {
		b.WriteString("  " + errorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}
