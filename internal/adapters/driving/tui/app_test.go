package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// mockActionService implements driving.ResultActionService for testing.
type mockActionService struct {
	copied []string
	opened []string
	err    error
}

func (m *mockActionService) CopyCitation(_ context.Context, match *domain.SourceMatch) error {
	if m.err != nil {
		return m.err
	}
	m.copied = append(m.copied, match.Citation())
	return nil
}

func (m *mockActionService) OpenURL(_ context.Context, url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}

func testReport() *domain.Report {
	return &domain.Report{
		BaseURL: "https://en.wikipedia.org",
		Articles: []domain.Article{
			{
				ID:    "A1",
				Title: "Sky",
				Claims: []domain.Claim{
					{
						Key:        domain.ClaimKey{ArticleID: "A1", Ordinal: 0},
						Text:       "The sky is blue.",
						GoogleLink: "https://google.com/search?q=sky+blue",
						Sites: []domain.SourceMatch{
							{
								URL:         "https://example.com/sky",
								Title:       "Why the sky is blue",
								Snippet:     "An explanation.",
								MatchedText: "The sky appears blue.",
							},
						},
					},
				},
			},
			{ID: "A2", Title: "Ocean"},
		},
	}
}

func newTestApp(t *testing.T) (*App, *mockActionService) {
	t.Helper()
	actions := &mockActionService{}
	app, err := NewApp(NewPorts(actions), testReport())
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app, actions
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// drive sends a key and runs any resulting command's message back through
// the model, the way the Bubbletea runtime would.
func drive(app *App, keys ...string) {
	for _, k := range keys {
		_, cmd := app.Update(keyMsg(k))
		for cmd != nil {
			msg := cmd()
			if msg == nil {
				break
			}
			_, cmd = app.Update(msg)
		}
	}
}

func TestNewApp_Success(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, messages.ViewArticles, app.CurrentView())
	assert.True(t, app.Ready())
}

func TestNewApp_MissingActionService(t *testing.T) {
	app, err := NewApp(&Ports{}, testReport())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingActionService)
}

func TestNewApp_MissingReport(t *testing.T) {
	app, err := NewApp(NewPorts(&mockActionService{}), nil)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingReport)
}

func TestApp_Init(t *testing.T) {
	app, _ := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	actions := &mockActionService{}
	app, err := NewApp(NewPorts(actions), testReport())
	require.NoError(t, err)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_NavigatesToClaims(t *testing.T) {
	app, _ := newTestApp(t)

	drive(app, "enter")

	assert.Equal(t, messages.ViewClaims, app.CurrentView())
	assert.Contains(t, app.View(), "Sky")
}

func TestApp_NavigatesToSources(t *testing.T) {
	app, _ := newTestApp(t)

	drive(app, "enter", "enter")

	assert.Equal(t, messages.ViewSources, app.CurrentView())
	assert.Contains(t, app.View(), "Why the sky is blue")
}

func TestApp_EscWalksBackUp(t *testing.T) {
	app, _ := newTestApp(t)
	drive(app, "enter", "enter")

	drive(app, "esc")
	assert.Equal(t, messages.ViewClaims, app.CurrentView())

	drive(app, "esc")
	assert.Equal(t, messages.ViewArticles, app.CurrentView())
}

func TestApp_CopyCitation(t *testing.T) {
	app, actions := newTestApp(t)
	drive(app, "enter", "enter")

	drive(app, "c")

	require.Len(t, actions.copied, 1)
	assert.Equal(t,
		"<ref>{{cite web|url=https://example.com/sky|title= Why the sky is blue}}</ref>",
		actions.copied[0])
	assert.Contains(t, app.View(), "Citation copied")
}

func TestApp_CopyCitationFailureIsNonFatal(t *testing.T) {
	app, actions := newTestApp(t)
	actions.err = errors.New("no clipboard")
	drive(app, "enter", "enter")

	drive(app, "c")

	assert.Contains(t, app.View(), "clipboard unavailable")
	assert.Equal(t, messages.ViewSources, app.CurrentView())
}

func TestApp_OpenURL(t *testing.T) {
	app, actions := newTestApp(t)
	drive(app, "enter", "enter")

	drive(app, "o")

	require.Len(t, actions.opened, 1)
	assert.Equal(t, "https://example.com/sky", actions.opened[0])
}

func TestApp_HelpView(t *testing.T) {
	app, _ := newTestApp(t)

	drive(app, "?")
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Copy the citation fragment")

	drive(app, "esc")
	assert.Equal(t, messages.ViewArticles, app.CurrentView())
}

func TestApp_QuitKeys(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ViewListsArticles(t *testing.T) {
	app, _ := newTestApp(t)

	out := app.View()

	assert.Contains(t, out, "Sky")
	assert.Contains(t, out, "Ocean")
	assert.Contains(t, out, "1 claim")
	assert.Contains(t, out, "0 claims")
}

func TestApp_WithContext(t *testing.T) {
	app, _ := newTestApp(t)

	ctx := context.Background()
	assert.Equal(t, app, app.WithContext(ctx))
}
