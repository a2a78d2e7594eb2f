package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mievr/internal/perturb"
	"github.com/san-kum/mievr/internal/units"
)

// Model is the live sweep viewer: a fixed density axis evaluated at an
// adjustable temperature. Every keypress that moves the temperature
// re-runs the closed-form evaluation, which is cheap enough to do
// synchronously in Update.
type Model struct {
	eval        *perturb.Evaluator
	densities   []float64
	temperature float64
	showA2      bool

	series   []float64
	etaMax   float64
	warnings int
	err      error
}

// NewModel builds the viewer at the deck's first temperature.
func NewModel(eval *perturb.Evaluator, densities []float64, temperature float64) Model {
	m := Model{
		eval:        eval,
		densities:   densities,
		temperature: temperature,
	}
	m.recompute()
	return m
}

func (m *Model) recompute() {
	m.series = m.series[:0]
	m.etaMax = 0
	m.warnings = 0
	m.err = nil

	epsKB := m.eval.Molecule().PotentialDepth * units.Boltzmann
	for _, rho := range m.densities {
		r, err := m.eval.Evaluate(perturb.StatePoint{Temperature: m.temperature, Density: rho})
		if err != nil {
			m.err = err
			return
		}
		v := r.A1
		if m.showA2 {
			v = r.A2
		}
		m.series = append(m.series, v/epsKB)
		if r.Eta > m.etaMax {
			m.etaMax = r.Eta
		}
		if r.NearClosePacking {
			m.warnings++
		}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "+", "k":
		m.temperature *= 1.05
		m.recompute()
	case "down", "-", "j":
		m.temperature /= 1.05
		m.recompute()
	case "tab", "t":
		m.showA2 = !m.showA2
		m.recompute()
	}
	return m, nil
}

func (m Model) View() string {
	mol := m.eval.Molecule()
	term := "a1"
	if m.showA2 {
		term = "a2"
	}

	header := headerStyle.Render(fmt.Sprintf("mie perturbation sweep: %s / (ε·kB)", term))

	if m.err != nil {
		return header + "\n" + warnStyle.Render(m.err.Error()) + "\n"
	}

	graph := graphStyle.Render(asciigraph.Plot(m.series,
		asciigraph.Height(14),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("ρ = %.4g … %.4g kg/m³", m.densities[0], m.densities[len(m.densities)-1])),
	))

	var stats strings.Builder
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("T", fmt.Sprintf("%.4g K", m.temperature))
	row("T*", fmt.Sprintf("%.4g", m.temperature/mol.PotentialDepth))
	row("σ", fmt.Sprintf("%.4g Å", mol.SegmentDiameter))
	row("ε/kB", fmt.Sprintf("%.4g K", mol.PotentialDepth))
	row("λr / λa", fmt.Sprintf("%.4g / %.4g", mol.RepulsiveExponent, mol.AttractiveExponent))
	row("ms", fmt.Sprintf("%.4g", mol.Segments))
	row("η max", fmt.Sprintf("%.4g", m.etaMax))
	if m.warnings > 0 {
		stats.WriteString(warnStyle.Render(fmt.Sprintf("%d point(s) beyond close packing", m.warnings)) + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, graph, statsStyle.Render(stats.String()))
	help := helpStyle.Render("↑/↓ adjust temperature · tab switch term · q quit")

	return header + "\n" + body + "\n" + help + "\n"
}
