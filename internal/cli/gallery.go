package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/render/svg"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// galleryOpts holds the command-line flags for the gallery command.
type galleryOpts struct {
	output string // output directory for rendered samples
	theme  string // theme applied to every sample
	all    bool   // render every chart type without the picker
}

// newGalleryCmd creates the gallery command for browsing sample charts.
// Without --all it opens an interactive picker; selecting a chart type
// renders a sample of it to the output directory.
func newGalleryCmd() *cobra.Command {
	opts := galleryOpts{output: "."}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render sample charts for every chart type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme: lite (default), dark, ocean, forest")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render all chart types without the picker")

	return cmd
}

// runGallery renders either every sample (with --all) or the one picked
// interactively.
func runGallery(opts *galleryOpts) error {
	kinds := galleryKinds()

	if opts.all {
		for _, k := range kinds {
			if err := renderSample(k, opts); err != nil {
				return err
			}
		}
		printSuccess("Rendered %d sample charts", len(kinds))
		printDetail("Directory: %s", opts.output)
		return nil
	}

	model := newGalleryModel(kinds)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("gallery picker: %w", err)
	}

	picked, ok := final.(galleryModel)
	if !ok || picked.selected == "" {
		printInfo("Nothing selected")
		return nil
	}
	return renderSample(picked.selected, opts)
}

// galleryKinds lists every renderable chart type in menu order.
func galleryKinds() []chart.Kind {
	all := []chart.Kind{
		chart.KindBar, chart.KindHorizontalBar, chart.KindLine, chart.KindArea,
		chart.KindPie, chart.KindDonut, chart.KindRadar, chart.KindGauge,
		chart.KindHeatmap, chart.KindWaterfall,
	}
	kinds := make([]chart.Kind, 0, len(all))
	for _, k := range all {
		if k.Supported() {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// renderSample renders one sample chart and writes it to the output directory.
func renderSample(kind chart.Kind, opts *galleryOpts) error {
	data, err := svg.Render(sampleSeries(kind), chart.Options{
		Type:  kind,
		Theme: opts.theme,
		Title: "Sample " + string(kind) + " chart",
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(opts.output, strings.ToLower(string(kind))+".svg")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered %s sample", kind)
	printFile(path)
	return nil
}

// sampleSeries builds demo data shaped for the given chart type.
func sampleSeries(kind chart.Kind) chart.Series {
	switch kind {
	case chart.KindGauge:
		return chart.Series{{Label: "Throughput", Value: 72, Max: 100}}
	case chart.KindHeatmap:
		return chart.Series{
			{Label: "Mon", Values: []float64{2, 5, 9, 4}},
			{Label: "Tue", Values: []float64{3, 7, 6, 1}},
			{Label: "Wed", Values: []float64{8, 2, 4, 6}},
		}
	case chart.KindWaterfall:
		return chart.Series{
			{Label: "Start", Value: 120},
			{Label: "Sales", Value: 45},
			{Label: "Refunds", Value: -18},
			{Label: "Costs", Value: -37},
			{Label: "Other", Value: 12},
		}
	default:
		return chart.Series{
			{Label: "Jan", Value: 12},
			{Label: "Feb", Value: 9},
			{Label: "Mar", Value: 17},
			{Label: "Apr", Value: 6},
			{Label: "May", Value: 14},
		}
	}
}

// =============================================================================
// galleryModel - Interactive chart type selection
// =============================================================================

// galleryModel is the bubbletea model for the chart type picker.
type galleryModel struct {
	kinds    []chart.Kind
	cursor   int
	selected chart.Kind
}

func newGalleryModel(kinds []chart.Kind) galleryModel {
	return galleryModel{kinds: kinds}
}

func (m galleryModel) Init() tea.Cmd {
	return nil
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.kinds)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.kinds[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m galleryModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Chart Gallery"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	for i, k := range m.kinds {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s", cursor, k)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.kinds))))

	return b.String()
}
