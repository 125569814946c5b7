package tui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TryLovingMichael/jellyflix-home/internal/catalog"
	"github.com/TryLovingMichael/jellyflix-home/internal/config"
	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
	"github.com/TryLovingMichael/jellyflix-home/internal/jellyfin"
	"github.com/TryLovingMichael/jellyflix-home/internal/session"
)

// ApplicationState represents the current screen
type ApplicationState int

const (
	StateLogin ApplicationState = iota
	StateLoading
	StateBrowsing
	StateSearching
	StateGenrePick
	StateDetail
)

// genreKeys is the fixed picker order for the genre view
var genreKeys = catalog.GenreKeys()

// row is one rendered bucket with its display label
type row struct {
	label string
	items []domain.CatalogItem
}

// Model is the main Bubble Tea model for the application
type Model struct {
	state  ApplicationState
	width  int
	height int

	store  *session.Store
	cfg    *config.Config
	logger *slog.Logger

	// Rebuilt after every login from the fresh session snapshot
	client     *jellyfin.Client
	aggregator *catalog.Aggregator
	searchSvc  *catalog.SearchService

	// Login form
	loginInputs [3]textinput.Model // server URL, username, password
	loginFocus  int
	loginErr    string

	// Browsing
	view      domain.ViewRequest
	result    *domain.ViewResult
	sortField catalog.SortField
	sorted    bool
	rowIdx    int
	colIdx    int

	// Local row filter (over the active bucket)
	filtering   bool
	filterInput textinput.Model

	// Search
	searchInput   textinput.Model
	searchResults []domain.CatalogItem
	searchIdx     int

	// Genre picker
	genreIdx int

	// Detail
	detailItem     *domain.CatalogItem
	detailSeasons  []domain.CatalogItem
	detailEpisodes map[string][]domain.CatalogItem
	detailErr      string

	spinner spinner.Model
	err     error
}

// NewModel creates the TUI model. When a persisted, authenticated
// session exists the app opens directly on the default view; otherwise
// it starts on the login form.
func NewModel(store *session.Store, cfg *config.Config, logger *slog.Logger, sess *domain.Session) Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		state:       StateLogin,
		store:       store,
		cfg:         cfg,
		logger:      logger,
		view:        domain.DefaultView(),
		sortField:   catalog.ParseSortField(cfg.UI.DefaultSort),
		searchInput: newInput("Search movies and shows...", 0),
		filterInput: newInput("Filter row...", 0),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	m.loginInputs[0] = newInput("http://192.168.1.100:8096", 64)
	m.loginInputs[1] = newInput("Username", 64)
	m.loginInputs[2] = newInput("Password", 64)
	m.loginInputs[2].EchoMode = textinput.EchoPassword
	m.loginInputs[0].Focus()

	if sess != nil {
		m.loginInputs[0].SetValue(sess.ServerURL)
		m.loginInputs[1].SetValue(sess.Username)
		if sess.Authenticated() {
			m.adoptSession(*sess)
			m.state = StateLoading
		}
	}

	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	if limit > 0 {
		in.CharLimit = limit
	}
	return in
}

// adoptSession rebuilds the client and services from a session snapshot
func (m *Model) adoptSession(sess domain.Session) {
	m.client = jellyfin.NewClient(sess, m.logger)
	m.aggregator = catalog.NewAggregator(m.client, m.logger)
	m.searchSvc = catalog.NewSearchService(m.client, m.logger)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.state == StateLoading {
		return tea.Batch(m.spinner.Tick, loadViewCmd(m.aggregator, m.view))
	}
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case LoggedInMsg:
		m.loginErr = ""
		m.adoptSession(msg.Session)
		m.state = StateLoading
		m.view = domain.DefaultView()
		return m, tea.Batch(m.spinner.Tick, loadViewCmd(m.aggregator, m.view))

	case ViewLoadedMsg:
		m.result = msg.Result
		m.view = msg.Request
		m.sorted = false
		m.rowIdx, m.colIdx = 0, 0
		m.filtering = false
		m.filterInput.SetValue("")
		m.state = StateBrowsing
		return m, nil

	case SearchResultsMsg:
		m.searchResults = msg.Items
		m.searchIdx = 0
		return m, nil

	case DetailLoadedMsg:
		m.detailItem = msg.Item
		m.detailSeasons = msg.Seasons
		m.detailEpisodes = msg.Episodes
		m.detailErr = ""
		m.state = StateDetail
		return m, nil

	case LoggedOutMsg:
		m.state = StateLogin
		m.result = nil
		m.loginErr = ""
		m.loginInputs[2].SetValue("")
		m.setLoginFocus(0)
		return m, textinput.Blink

	case ErrMsg:
		return m.handleError(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleError maps async failures to screen transitions. Aggregation
// failures caused by a rejected or unauthenticated session invalidate
// the stored session and force re-login; a login failure stays on the
// login form so the user can retry.
func (m Model) handleError(msg ErrMsg) (tea.Model, tea.Cmd) {
	m.logger.Error("ui error", "context", msg.Context, "error", msg.Err)

	if m.state == StateLogin || msg.Context == "login" {
		m.loginErr = "Authentication failed. Check the server URL and credentials."
		m.state = StateLogin
		return m, nil
	}

	var reqErr *domain.RequestError
	sessionInvalid := errors.As(msg.Err, &reqErr) ||
		errors.Is(msg.Err, domain.ErrAuthFailed) ||
		errors.Is(msg.Err, domain.ErrUnauthenticated)
	if sessionInvalid {
		return m, logoutCmd(m.store, m.logger)
	}

	if m.state == StateDetail || msg.Context == "detail" {
		m.detailErr = msg.Err.Error()
		m.state = StateBrowsing
		return m, nil
	}

	m.err = msg.Err
	m.state = StateBrowsing
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLogin:
		return m.updateLogin(msg)
	case StateBrowsing:
		return m.updateBrowsing(msg)
	case StateSearching:
		return m.updateSearching(msg)
	case StateGenrePick:
		return m.updateGenrePick(msg)
	case StateDetail:
		return m.updateDetail(msg)
	case StateLoading:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.setLoginFocus((m.loginFocus + 1) % len(m.loginInputs))
		return m, textinput.Blink
	case "shift+tab", "up":
		m.setLoginFocus((m.loginFocus + len(m.loginInputs) - 1) % len(m.loginInputs))
		return m, textinput.Blink
	case "enter":
		if m.loginFocus < len(m.loginInputs)-1 {
			m.setLoginFocus(m.loginFocus + 1)
			return m, textinput.Blink
		}
		sess := domain.Session{
			ServerURL: m.loginInputs[0].Value(),
			Username:  m.loginInputs[1].Value(),
			Password:  m.loginInputs[2].Value(),
		}
		if sess.ServerURL == "" || sess.Username == "" {
			m.loginErr = "Server URL and username are required."
			return m, nil
		}
		m.loginErr = ""
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, loginCmd(m.store, sess, m.logger))
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m *Model) setLoginFocus(focus int) {
	m.loginFocus = focus
	for i := range m.loginInputs {
		if i == focus {
			m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filterInput.SetValue("")
			m.filterInput.Blur()
			m.colIdx = 0
			return m, nil
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.colIdx = 0
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1":
		return m.requestView(domain.DefaultView())
	case "2":
		return m.requestView(domain.TypeView(domain.ViewMovies))
	case "3":
		return m.requestView(domain.TypeView(domain.ViewTVShows))
	case "4":
		return m.requestView(domain.TypeView(domain.ViewContinue))
	case "5":
		return m.requestView(domain.TypeView(domain.ViewTopRated))
	case "6":
		return m.requestView(domain.TypeView(domain.ViewTrending))
	case "g":
		m.genreIdx = 0
		m.state = StateGenrePick
		return m, nil
	case "/":
		m.state = StateSearching
		m.searchResults = nil
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink
	case "f":
		m.filtering = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, textinput.Blink
	case "o":
		m.sortField = (m.sortField + 1) % 4
		m.sorted = true
		m.colIdx = 0
		return m, nil
	case "L":
		return m, logoutCmd(m.store, m.logger)
	case "r":
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, loadViewCmd(m.aggregator, m.view))
	case "up", "k":
		if m.rowIdx > 0 {
			m.rowIdx--
			m.colIdx = 0
		}
		return m, nil
	case "down", "j":
		if m.rowIdx < len(m.rows())-1 {
			m.rowIdx++
			m.colIdx = 0
		}
		return m, nil
	case "left", "h":
		if m.colIdx > 0 {
			m.colIdx--
		}
		return m, nil
	case "right", "l":
		if items := m.activeItems(); m.colIdx < len(items)-1 {
			m.colIdx++
		}
		return m, nil
	case "enter":
		if item, ok := m.selectedItem(); ok {
			m.state = StateLoading
			return m, tea.Batch(m.spinner.Tick, loadDetailCmd(m.client, item.ID))
		}
		return m, nil
	}
	return m, nil
}

func (m Model) requestView(req domain.ViewRequest) (tea.Model, tea.Cmd) {
	m.state = StateLoading
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, loadViewCmd(m.aggregator, req))
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = StateBrowsing
		m.searchInput.Blur()
		return m, nil
	case "enter":
		query := m.searchInput.Value()
		if isBlank(query) {
			return m, nil
		}
		return m, searchCmd(m.searchSvc, query)
	case "up":
		if m.searchIdx > 0 {
			m.searchIdx--
		}
		return m, nil
	case "down":
		if m.searchIdx < len(m.searchResults)-1 {
			m.searchIdx++
		}
		return m, nil
	case "tab":
		if len(m.searchResults) > 0 {
			item := m.searchResults[m.searchIdx]
			m.state = StateLoading
			m.searchInput.Blur()
			return m, tea.Batch(m.spinner.Tick, loadDetailCmd(m.client, item.ID))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateGenrePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = StateBrowsing
		return m, nil
	case "up", "k":
		if m.genreIdx > 0 {
			m.genreIdx--
		}
		return m, nil
	case "down", "j":
		if m.genreIdx < len(genreKeys)-1 {
			m.genreIdx++
		}
		return m, nil
	case "enter":
		return m.requestView(domain.GenreView(genreKeys[m.genreIdx]))
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = StateBrowsing
		return m, nil
	}
	return m, nil
}

// rows returns the non-empty buckets of the current view in display
// order, with the post-hoc sort applied when the user toggled one
func (m Model) rows() []row {
	if m.result == nil {
		return nil
	}

	buckets := []row{
		{"Continue Watching", m.result.ContinueWatching},
		{"Recently Added", m.result.RecentlyAdded},
		{"Movies", m.result.Movies},
		{"TV Shows", m.result.TVShows},
	}

	var rows []row
	for _, b := range buckets {
		if len(b.items) == 0 {
			continue
		}
		items := b.items
		if m.sorted {
			items = catalog.SortItems(items, m.sortField)
		}
		rows = append(rows, row{label: b.label, items: items})
	}
	return rows
}

// activeItems returns the items of the selected row, narrowed by the
// local fuzzy filter when one is active
func (m Model) activeItems() []domain.CatalogItem {
	rows := m.rows()
	if m.rowIdx >= len(rows) {
		return nil
	}
	items := rows[m.rowIdx].items
	if pattern := m.filterInput.Value(); pattern != "" {
		items = filterItems(pattern, items)
	}
	return items
}

// selectedItem returns the item under the cursor
func (m Model) selectedItem() (domain.CatalogItem, bool) {
	items := m.activeItems()
	if m.colIdx >= len(items) {
		return domain.CatalogItem{}, false
	}
	return items[m.colIdx], true
}
