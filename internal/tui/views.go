package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TryLovingMichael/jellyflix-home/internal/catalog"
	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	heroStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// View implements tea.Model
func (m Model) View() string {
	switch m.state {
	case StateLogin:
		return m.viewLogin()
	case StateLoading:
		return fmt.Sprintf("\n  %s Loading...\n", m.spinner.View())
	case StateBrowsing:
		return m.viewBrowse()
	case StateSearching:
		return m.viewSearch()
	case StateGenrePick:
		return m.viewGenrePick()
	case StateDetail:
		return m.viewDetail()
	}
	return ""
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Jellyflix") + "\n\n")
	labels := []string{"Server", "Username", "Password"}
	for i, in := range m.loginInputs {
		b.WriteString(fmt.Sprintf("  %s\n  %s\n\n", labelStyle.Render(labels[i]), in.View()))
	}
	if m.loginErr != "" {
		b.WriteString("  " + errorStyle.Render(m.loginErr) + "\n\n")
	}
	b.WriteString("  " + dimStyle.Render("tab: next field • enter: sign in • esc: quit") + "\n")
	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Jellyflix — "+m.viewTitle()) + "\n\n")

	if m.result != nil && m.result.Hero != nil {
		b.WriteString(indent(m.renderHero(*m.result.Hero)) + "\n\n")
	}

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString("  " + dimStyle.Render("Nothing here yet.") + "\n")
	}
	for i, r := range rows {
		items := r.items
		if i == m.rowIdx && m.filterInput.Value() != "" {
			items = filterItems(m.filterInput.Value(), items)
		}
		b.WriteString("  " + labelStyle.Render(r.label) + dimStyle.Render(fmt.Sprintf(" (%d)", len(items))) + "\n")
		b.WriteString("  " + m.renderStrip(items, i == m.rowIdx) + "\n\n")
	}

	if m.filtering {
		b.WriteString("  Filter: " + m.filterInput.View() + "\n")
	}
	if m.err != nil {
		b.WriteString("  " + errorStyle.Render(m.err.Error()) + "\n")
	}
	if m.detailErr != "" {
		b.WriteString("  " + errorStyle.Render(m.detailErr) + "\n")
	}

	sortHint := "o: sort"
	if m.sorted {
		sortHint = "o: sort (" + m.sortField.String() + ")"
	}
	b.WriteString("  " + dimStyle.Render(
		"1-6: views • g: genre • /: search • f: filter • "+sortHint+" • enter: details • r: reload • L: logout • q: quit") + "\n")
	return b.String()
}

// renderStrip renders one bucket as a horizontal strip of titles,
// windowed around the cursor
func (m Model) renderStrip(items []domain.CatalogItem, active bool) string {
	if len(items) == 0 {
		return dimStyle.Render("(empty)")
	}

	limit := m.cfg.UI.RowLimit
	if limit <= 0 {
		limit = 20
	}
	start := 0
	if active && m.colIdx >= limit {
		start = m.colIdx - limit + 1
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	parts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		name := items[i].Name
		if active && i == m.colIdx {
			parts = append(parts, selectedStyle.Render(" "+name+" "))
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, dimStyle.Render(" · "))
}

func (m Model) renderHero(hero domain.CatalogItem) string {
	var meta []string
	if hero.Year > 0 {
		meta = append(meta, fmt.Sprintf("%d", hero.Year))
	}
	if hero.CommunityRating > 0 {
		meta = append(meta, fmt.Sprintf("★ %.1f", hero.CommunityRating))
	}
	if hero.OfficialRating != "" {
		meta = append(meta, hero.OfficialRating)
	}
	if hero.RunTimeTicks > 0 {
		meta = append(meta, hero.FormattedRuntime())
	}

	body := titleStyle.Render(hero.Name)
	if len(meta) > 0 {
		body += "\n" + dimStyle.Render(strings.Join(meta, "  "))
	}
	if hero.Overview != "" {
		body += "\n" + truncate(hero.Overview, 120)
	}
	return heroStyle.Render(body)
}

func (m Model) viewSearch() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Search") + "\n\n")
	b.WriteString("  " + m.searchInput.View() + "\n\n")

	for i, item := range m.searchResults {
		line := fmt.Sprintf("%s  %s", item.Name, dimStyle.Render(item.Kind.String()))
		if desc := item.Description(); desc != "" {
			line += dimStyle.Render("  " + desc)
		}
		if i == m.searchIdx {
			line = selectedStyle.Render(" " + item.Name + " ")
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + dimStyle.Render("enter: search • tab: open selection • esc: back") + "\n")
	return b.String()
}

func (m Model) viewGenrePick() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Browse by Genre") + "\n\n")
	for i, key := range genreKeys {
		if i == m.genreIdx {
			b.WriteString("  " + selectedStyle.Render(" "+key+" ") + "\n")
		} else {
			b.WriteString("  " + key + "\n")
		}
	}
	b.WriteString("\n  " + dimStyle.Render("enter: select • esc: back") + "\n")
	return b.String()
}

func (m Model) viewDetail() string {
	if m.detailItem == nil {
		return ""
	}
	item := *m.detailItem

	var b strings.Builder
	b.WriteString("\n" + indent(m.renderHero(item)) + "\n\n")

	if len(item.Genres) > 0 {
		b.WriteString("  " + labelStyle.Render("Genres") + "  " + strings.Join(item.Genres, ", ") + "\n\n")
	}

	if item.Kind == domain.KindSeries {
		for _, s := range m.detailSeasons {
			b.WriteString("  " + labelStyle.Render(s.Name) + "\n")
			for _, ep := range m.detailEpisodes[s.ID] {
				b.WriteString(fmt.Sprintf("    %s  %s\n", dimStyle.Render(ep.EpisodeCode()), ep.Name))
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  " + labelStyle.Render("Stream") + "  " + m.client.StreamURL(item.ID) + "\n\n")
	}

	b.WriteString("  " + dimStyle.Render("esc: back • q: quit") + "\n")
	return b.String()
}

func (m Model) viewTitle() string {
	if m.view.Kind == domain.ViewGenre {
		if label, ok := catalog.GenreLabel(m.view.Genre); ok {
			return label
		}
		return m.view.Genre
	}
	return m.view.Kind.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
