package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/radarhq/techradar/pkg/cache"
	"github.com/radarhq/techradar/pkg/pipeline"
	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/radar/chart"
	"github.com/radarhq/techradar/pkg/radar/sink"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	// resizeDebounce is how long resize events must settle before the
	// layout is recomputed. Intermediate sizes are discarded.
	resizeDebounce = 250 * time.Millisecond

	// browseChartSize is the canvas the browse view lays out against.
	// Terminal cells are not pixels, so a fixed square canvas keeps the
	// cached layouts stable across terminal geometries.
	browseChartSize = 800

	// browseCacheSize bounds the in-memory layout cache.
	browseCacheSize = 16 << 20
)

// browseCommand creates the interactive terminal browser.
func (c *CLI) browseCommand() *cobra.Command {
	var useSample bool
	var taxonomyPath string

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Explore a radar dataset interactively in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				useSample = true
			}

			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runBrowse(ctx, pipeline.Options{
				Input:        input,
				UseSample:    useSample,
				TaxonomyPath: taxonomyPath,
				Logger:       c.Logger,
			})
		},
	}

	cmd.Flags().BoolVar(&useSample, "sample", false, "browse the built-in sample dataset")
	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "taxonomy TOML file")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	ds, err := pipeline.Load(ctx, opts)
	if err != nil {
		return err
	}
	for _, w := range ds.Warnings {
		logger.Warn("skipped record", "detail", w)
	}

	store, err := cache.NewMemoryCache(browseCacheSize)
	if err != nil {
		return err
	}
	defer store.Close()

	model := newBrowseModel(ctx, ds, store, logger)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// browseModel - section list with per-section item drill-down
// =============================================================================

type browseView int

const (
	viewSections browseView = iota
	viewItems
)

// resizeSettledMsg fires after the resize debounce interval. Seq guards
// against stale timers: only the message matching the latest resize
// recomputes anything.
type resizeSettledMsg struct {
	seq int
}

type detailRow struct {
	id                          int
	name, ring, movement, score string
}

type browseModel struct {
	ctx    context.Context
	ds     *pipeline.Dataset
	chart  *chart.Chart
	store  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger

	view       browseView
	cursor     int // section index in the list view
	itemCursor int
	offset     int
	height     int

	section string
	rows    []detailRow

	resizeSeq int
	err       error
}

func newBrowseModel(ctx context.Context, ds *pipeline.Dataset, store cache.Cache, logger *log.Logger) *browseModel {
	m := &browseModel{
		ctx:    ctx,
		ds:     ds,
		store:  store,
		keyer:  cache.NewDefaultKeyer(),
		logger: logger,
		height: 15,
	}
	m.chart = chart.Assemble(ds.Items, ds.Taxonomy, browseChartSize, browseChartSize,
		chart.WithInteraction(logInteraction{logger}))
	return m
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		// Debounce: remember the latest geometry, recompute only after
		// input settles.
		m.resizeSeq++
		seq := m.resizeSeq
		h := msg.Height - 8
		if h < 5 {
			h = 5
		}
		m.height = h
		return m, tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
			return resizeSettledMsg{seq: seq}
		})

	case resizeSettledMsg:
		if msg.seq != m.resizeSeq {
			return m, nil // superseded by a later resize
		}
		if m.view == viewItems {
			m.loadSection(m.section)
		}
		m.clampScroll()
	}
	return m, nil
}

func (m *browseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.view == viewItems {
			m.view = viewSections
			m.itemCursor = 0
			m.offset = 0
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.view == viewSections {
			if m.cursor > 0 {
				m.cursor--
			}
		} else if m.itemCursor > 0 {
			m.itemCursor--
		}
		m.clampScroll()

	case "down", "j":
		if m.view == viewSections {
			if m.cursor < len(m.ds.Taxonomy.Sections)-1 {
				m.cursor++
			}
		} else if m.itemCursor < len(m.rows)-1 {
			m.itemCursor++
		}
		m.clampScroll()

	case "enter":
		if m.view == viewSections {
			section := m.ds.Taxonomy.Sections[m.cursor].Name
			m.chart.ActivateSection(section)
			m.loadSection(section)
			m.view = viewItems
			m.itemCursor = 0
			m.offset = 0
		} else if len(m.rows) > 0 {
			m.chart.ActivateItem(m.rows[m.itemCursor].id)
		}
	}
	return m, nil
}

// loadSection builds the detail rows for a section, going through the
// in-memory layout cache so revisits and resize re-renders skip the
// relaxation work.
func (m *browseModel) loadSection(section string) {
	m.section = section
	layout, err := m.detailLayout(section)
	if err != nil {
		m.err = err
		m.rows = nil
		return
	}
	m.err = nil
	m.rows = buildDetailRows(layout, m.ds.Taxonomy.Rings)
}

func (m *browseModel) detailLayout(section string) (sink.Layout, error) {
	key := m.keyer.LayoutKey(m.ds.Hash, cache.LayoutKeyOpts{
		Width:   browseChartSize,
		Height:  browseChartSize,
		Section: section,
	})
	if data, hit, err := m.store.Get(m.ctx, key); err == nil && hit {
		return sink.ParseJSON(data)
	}

	c, err := chart.AssembleDetail(m.ds.Items, section, m.ds.Taxonomy, browseChartSize, browseChartSize)
	if err != nil {
		return sink.Layout{}, err
	}
	data, err := sink.RenderJSON(c)
	if err != nil {
		return sink.Layout{}, err
	}
	_ = m.store.Set(m.ctx, key, data, 0)
	return sink.ParseJSON(data)
}

// buildDetailRows orders a section's markers by ring, then id, for the
// scrollable list.
func buildDetailRows(l sink.Layout, rings []string) []detailRow {
	ringOrder := make(map[string]int, len(rings))
	for i, r := range rings {
		ringOrder[r] = i
	}

	markers := make([]sink.LayoutMarker, len(l.Markers))
	copy(markers, l.Markers)
	sort.SliceStable(markers, func(i, j int) bool {
		ri, rj := ringOrder[markers[i].Ring], ringOrder[markers[j].Ring]
		if ri != rj {
			return ri < rj
		}
		return markers[i].ID < markers[j].ID
	})

	rows := make([]detailRow, len(markers))
	for i, mk := range markers {
		score := "—"
		if mk.Score != nil {
			score = fmt.Sprintf("%.2f", *mk.Score)
		}
		movement := string(mk.Movement)
		if movement == "" || movement == "none" {
			movement = "—"
		}
		rows[i] = detailRow{
			id:       mk.ID,
			name:     mk.Name,
			ring:     mk.Ring,
			movement: movement,
			score:    score,
		}
	}
	return rows
}

func (m *browseModel) clampScroll() {
	cursor := m.itemCursor
	if m.view == viewSections {
		cursor = m.cursor
	}
	if cursor < m.offset {
		m.offset = cursor
	}
	if cursor >= m.offset+m.height {
		m.offset = cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *browseModel) View() string {
	if m.view == viewItems {
		return m.viewItemList()
	}
	return m.viewSectionList()
}

func (m *browseModel) viewSectionList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Technology Radar"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open section  q quit"))
	b.WriteString("\n\n")

	counts := make(map[string]int)
	for _, mk := range m.chart.Markers {
		counts[mk.Item.Section]++
	}

	rows := [][]string{}
	for i, s := range m.ds.Taxonomy.Sections {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, s.Name, fmt.Sprintf("%d", counts[s.Name])})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Section", "Items").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d items total", len(m.chart.Markers))))
	return b.String()
}

func (m *browseModel) viewItemList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.section))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ activate  esc back  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		if i == m.itemCursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, fmt.Sprintf("%d", r.id), r.name, r.ring, r.movement, r.score})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Ring", "Moved", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.itemCursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.itemCursor+1, len(m.rows))))
	return b.String()
}

// logInteraction reports chart activations through the structured
// logger, standing in for the DOM event wiring of a browser host.
type logInteraction struct {
	logger *log.Logger
}

func (l logInteraction) SectionActivated(name string) {
	l.logger.Debug("section activated", "section", name)
}

func (l logInteraction) ItemActivated(item radar.Item) {
	l.logger.Debug("item activated", "id", item.ID, "name", item.Name)
}
