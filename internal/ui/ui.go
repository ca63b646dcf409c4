package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/mzsombor/wishlet/internal/catalog"
	"github.com/mzsombor/wishlet/internal/prefs"
	"github.com/mzsombor/wishlet/internal/wishlist"
)

// View represents the current active view.
type View int

const (
	ViewProducts View = iota
	ViewDetail
	ViewWishlist
)

// fetchState tracks the lifecycle of a catalog request for one view.
// Terminal states are success and error; there is no automatic retry.
type fetchState int

const (
	fetchLoading fetchState = iota
	fetchSuccess
	fetchError
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    catalog.Fetcher
	Store     *wishlist.Store
	Logger    zerolog.Logger
	ThemeName string
	PrefsPath string
	APIURL    string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    catalog.Fetcher
	store     *wishlist.Store
	log       zerolog.Logger
	prefsPath string
	apiHost   string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	spinner     spinner.Model

	// Wishlist hydration: indicators stay hidden until the store's
	// persisted snapshot has loaded.
	hydrated bool

	// Products view
	listState   fetchState
	products    []catalog.Product
	selectedRow int
	filterInput textinput.Model
	filterMode  bool
	filter      string

	// Detail view
	detailState    fetchState
	detailNotFound bool
	detailID       int
	product        *catalog.Product
	detailViewport viewport.Model
	returnView     View

	// Wishlist view
	wishRow int

	// fetchGen invalidates replies from fetches a navigation superseded.
	fetchGen int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter products"
	filter.CharLimit = 64
	filter.Width = 30

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		log:         opts.Logger,
		prefsPath:   prefsPath,
		apiHost:     hostOf(opts.APIURL),
		theme:       theme,
		currentView: ViewProducts,
		listState:   fetchLoading,
		detailID:    0,
		spinner:     sp,
		filterInput: filter,
	}
}

// Init implements tea.Model. The product listing is fetched immediately;
// wishlist hydration is driven from Run so the store can notify the
// running program.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchProductsCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, max(msg.Height-3, 1))
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case productsMsg:
		if msg.gen != m.fetchGen {
			// Reply for a view the user already left.
			return m, nil
		}
		m.products = msg.products
		m.listState = fetchSuccess
		m.clampProductSelection()
		return m, nil

	case productMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.product = msg.product
		m.detailState = fetchSuccess
		m.updateDetailViewport()
		return m, nil

	case fetchErrMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.log.Warn().Err(msg.err).Bool("detail", msg.detail).Msg("catalog fetch failed")
		if msg.detail {
			m.detailState = fetchError
			m.detailNotFound = errors.Is(msg.err, catalog.ErrNotFound)
		} else {
			m.listState = fetchError
		}
		return m, nil

	case storeChangedMsg:
		if m.store != nil {
			m.hydrated = m.store.Hydrated()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewProducts:
		return m.renderProducts()
	case ViewDetail:
		return m.renderDetail()
	case ViewWishlist:
		return m.renderWishlist()
	default:
		return ""
	}
}

// contentHeight returns the rows available below the header and command bar.
func (m Model) contentHeight() int {
	return max(m.height-2, 1)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.filterMode {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "tab":
		if m.currentView == ViewProducts {
			m.showWishlist()
			return m, nil
		}
		return m, m.showProducts()

	case "p":
		if m.currentView != ViewProducts {
			return m, m.showProducts()
		}
		return m, nil

	case "w":
		if m.currentView != ViewWishlist {
			m.showWishlist()
		}
		return m, nil

	case "esc":
		return m.handleEscape()
	}

	switch m.currentView {
	case ViewProducts:
		return m.handleProductsKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewWishlist:
		return m.handleWishlistKey(msg)
	}

	return m, nil
}

// handleEscape steps back one level: filter → products → (detail origin).
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ViewDetail:
		if m.returnView == ViewWishlist {
			m.showWishlist()
			return m, nil
		}
		return m, m.showProducts()
	case ViewWishlist:
		return m, m.showProducts()
	case ViewProducts:
		if m.filter != "" {
			m.filter = ""
			m.filterInput.SetValue("")
			m.selectedRow = 0
		}
	}
	return m, nil
}

// handleFilterKey processes keys while the filter input is focused.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filter = strings.TrimSpace(m.filterInput.Value())
		m.filterMode = false
		m.filterInput.Blur()
		m.selectedRow = 0
		return m, nil
	case "esc":
		m.filterMode = false
		m.filterInput.Blur()
		m.filterInput.SetValue(m.filter)
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// handleProductsKey processes keyboard input for the products view.
func (m Model) handleProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.filteredProducts()

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < len(products)-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		if len(products) > 0 {
			m.selectedRow = len(products) - 1
		}
	case "enter":
		if p := m.selectedProduct(); p != nil {
			return m, m.openDetail(p.ID, ViewProducts)
		}
	case " ":
		if p := m.selectedProduct(); p != nil && m.store != nil {
			m.store.Toggle(*p)
		}
	case "/":
		if m.listState == fetchSuccess {
			m.filterMode = true
			m.filterInput.Focus()
			return m, textinput.Blink
		}
	case "r":
		return m, m.showProducts()
	}

	return m, nil
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.product != nil && m.store != nil {
			m.store.Toggle(*m.product)
		}
		return m, nil
	case "r":
		if m.detailID > 0 {
			return m, m.openDetail(m.detailID, m.returnView)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// handleWishlistKey processes keyboard input for the wishlist view.
func (m Model) handleWishlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.wishlistItems()

	switch msg.String() {
	case "j", "down":
		if m.wishRow < len(items)-1 {
			m.wishRow++
		}
	case "k", "up":
		if m.wishRow > 0 {
			m.wishRow--
		}
	case "g", "home":
		m.wishRow = 0
	case "G", "end":
		if len(items) > 0 {
			m.wishRow = len(items) - 1
		}
	case "enter":
		if m.wishRow < len(items) {
			return m, m.openDetail(items[m.wishRow].ID, ViewWishlist)
		}
	case "x", " ":
		if m.wishRow < len(items) && m.store != nil {
			m.store.Remove(items[m.wishRow].ID)
			if m.wishRow > 0 && m.wishRow >= len(items)-1 {
				m.wishRow--
			}
		}
	}

	return m, nil
}

// showProducts switches to the products view and starts a fresh fetch.
// Revisits always re-fetch; nothing is cached between navigations.
func (m *Model) showProducts() tea.Cmd {
	m.currentView = ViewProducts
	m.listState = fetchLoading
	m.products = nil
	m.fetchGen++
	return tea.Batch(m.fetchProductsCmd(), m.spinner.Tick)
}

// showWishlist switches to the wishlist view. The wishlist reads only the
// store, so there is nothing to fetch.
func (m *Model) showWishlist() {
	m.currentView = ViewWishlist
	if n := len(m.wishlistItems()); m.wishRow >= n {
		m.wishRow = max(n-1, 0)
	}
}

// openDetail switches to the detail view and fetches the product.
func (m *Model) openDetail(id int, from View) tea.Cmd {
	m.currentView = ViewDetail
	m.returnView = from
	m.detailState = fetchLoading
	m.detailNotFound = false
	m.detailID = id
	m.product = nil
	m.fetchGen++
	return tea.Batch(m.fetchProductCmd(id), m.spinner.Tick)
}

// selectedProduct returns the product under the cursor in the products view.
func (m Model) selectedProduct() *catalog.Product {
	products := m.filteredProducts()
	if m.selectedRow < 0 || m.selectedRow >= len(products) {
		return nil
	}
	return &products[m.selectedRow]
}

// filteredProducts applies the active filter to the fetched listing.
func (m Model) filteredProducts() []catalog.Product {
	if m.filter == "" {
		return m.products
	}
	needle := strings.ToLower(m.filter)
	filtered := make([]catalog.Product, 0, len(m.products))
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (m *Model) clampProductSelection() {
	if n := len(m.filteredProducts()); m.selectedRow >= n {
		m.selectedRow = max(n-1, 0)
	}
}

// wishlisted reports whether a product should render with a wishlist
// indicator. Membership is unknown until hydration completes, and unknown
// renders as false.
func (m Model) wishlisted(id int) bool {
	return m.hydrated && m.store != nil && m.store.Contains(id)
}

// wishCount returns the count shown in the navigation header.
func (m Model) wishCount() int {
	if !m.hydrated || m.store == nil {
		return 0
	}
	return m.store.Len()
}

func (m Model) wishlistItems() []catalog.Product {
	if !m.hydrated || m.store == nil {
		return nil
	}
	return m.store.Items()
}

func (m Model) anyLoading() bool {
	switch m.currentView {
	case ViewProducts:
		return m.listState == fetchLoading
	case ViewDetail:
		return m.detailState == fetchLoading
	case ViewWishlist:
		return !m.hydrated
	}
	return false
}

// Messages

type productsMsg struct {
	gen      int
	products []catalog.Product
}

type productMsg struct {
	gen     int
	product *catalog.Product
}

type fetchErrMsg struct {
	gen    int
	detail bool
	err    error
}

// storeChangedMsg is sent whenever the wishlist store mutates or finishes
// hydrating, so views re-read it on the next render.
type storeChangedMsg struct{}

// Commands

func (m Model) fetchProductsCmd() tea.Cmd {
	ctx, client, gen := m.ctx, m.client, m.fetchGen
	return func() tea.Msg {
		products, err := client.FetchProducts(ctx)
		if err != nil {
			return fetchErrMsg{gen: gen, err: err}
		}
		return productsMsg{gen: gen, products: products}
	}
}

func (m Model) fetchProductCmd(id int) tea.Cmd {
	ctx, client, gen := m.ctx, m.client, m.fetchGen
	return func() tea.Msg {
		product, err := client.FetchProduct(ctx, id)
		if err != nil {
			return fetchErrMsg{gen: gen, detail: true, err: err}
		}
		return productMsg{gen: gen, product: product}
	}
}

// Run starts the Bubble Tea program and hydrates the wishlist store in the
// background. Store notifications are forwarded into the program so the UI
// re-renders on every mutation, wherever it originated.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	return runProgram(p, opts.Store)
}

// runProgram wires store notifications into the program, hydrates the store
// in the background, and blocks until the program exits. Notifications are
// delivered on a fresh goroutine: most mutations originate inside Update,
// and Send from the event-loop goroutine would block on the very channel
// that goroutine drains.
func runProgram(p *tea.Program, store *wishlist.Store) error {
	if store != nil {
		unsubscribe := store.Subscribe(func() {
			go p.Send(storeChangedMsg{})
		})
		defer unsubscribe()

		go store.Hydrate()
	}

	_, err := p.Run()
	return err
}
