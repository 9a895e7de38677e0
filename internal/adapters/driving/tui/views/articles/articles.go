// Package articles provides the article list view for the report browser.
package articles

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// View lists the articles of a loaded report.
type View struct {
	styles   *styles.Styles
	articles []domain.Article
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new article list view.
func NewView(s *styles.Styles, arts []domain.Article) *View {
	return &View{
		styles:   s,
		articles: arts,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the article list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.articles)-1 {
			v.selected++
		}
	case "enter":
		if len(v.articles) > 0 && v.selected < len(v.articles) {
			article := v.articles[v.selected]
			return v, func() tea.Msg {
				return messages.ArticleSelected{Article: article}
			}
		}
	}

	return v, nil
}

// View renders the article list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Articles"))
	b.WriteString("\n\n")

	if len(v.articles) == 0 {
		b.WriteString(v.styles.Muted.Render("No articles in this report."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.articles {
		b.WriteString(v.renderArticle(i, &v.articles[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderArticle(index int, article *domain.Article) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	claims := fmt.Sprintf("%d claims", len(article.Claims))
	if len(article.Claims) == 1 {
		claims = "1 claim"
	}

	title := article.Title
	maxTitleLen := v.width - len(claims) - 8
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%s  (%s)", indicator, title, claims))
	}
	return v.styles.Normal.Render(indicator+title+"  ") +
		v.styles.Muted.Render("("+claims+")")
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[enter] claims  [j/k] move  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SelectedIndex returns the currently selected article index.
func (v *View) SelectedIndex() int {
	return v.selected
}
