package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"techstore/internal/auth"
	"techstore/internal/cart"
	"techstore/internal/catalog"
	"techstore/internal/config"
	"techstore/internal/prefs"
	"techstore/internal/wishlist"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewCart
	ViewWishlist
	ViewAccount
)

// authGateNotice is shown when a signed-out visitor tries to add a product
// to the cart or wishlist.
const authGateNotice = "You must login first to add products to your cart/wishlist"

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   *catalog.Catalog
	Cart      *cart.Store
	Wishlist  *wishlist.Store
	Session   *auth.Session
	Config    *config.Config
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Wiring
	catalog   *catalog.Catalog
	cart      *cart.Store
	wishlist  *wishlist.Store
	session   *auth.Session
	config    *config.Config
	prefsPath string

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focusedPane int // 0 = product table, 1 = detail

	// Browse state
	products    []catalog.Product
	visible     []catalog.Product
	selectedRow int
	category    string
	searchTerm  string
	sortMode    catalog.Sort
	priceIdx    int
	ratingIdx   int

	// Detail state
	detailViewport viewport.Model
	quantity       int

	// Search overlay
	searching      bool
	searchInput    textinput.Model
	searchPrior    string
	suggestions    []string

	// Pending add-to-cart
	adding   bool
	addingID string
	spin     spinner.Model

	// Cart / wishlist selection
	cartRow int
	wishRow int

	// Account form
	authRegister bool
	authInputs   []textinput.Model
	authFocus    int
	authErrs     auth.FieldErrors

	// Overlays and transient status
	showHelp  bool
	modalMsg  string
	statusMsg string
	statusSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	m := Model{
		catalog:     opts.Catalog,
		cart:        opts.Cart,
		wishlist:    opts.Wishlist,
		session:     opts.Session,
		config:      cfg,
		prefsPath:   prefsPath,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewBrowse,
		category:    catalog.AllCategories,
		sortMode:    catalog.SortName,
		quantity:    1,
	}

	if opts.Catalog != nil {
		m.products = opts.Catalog.Products()
	}
	m.applyFilters()
	m.initSearchInput()
	m.initAuthInputs()
	m.initSpinner()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
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
			m.initDetailViewport()
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case spinner.TickMsg:
		if m.adding {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case cartAddedMsg:
		return m.handleCartAdded(msg)

	case statusExpiredMsg:
		if int(msg) == m.statusSeq {
			m.statusMsg = ""
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

	if m.modalMsg != "" {
		return m.renderNotice()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Any key dismisses a blocking notice; "a" jumps to the account view
	// so the visitor can sign in right away.
	if m.modalMsg != "" {
		m.modalMsg = ""
		if msg.String() == "a" {
			m.currentView = ViewAccount
		}
		return m, nil
	}

	// Search overlay captures everything except its own exit keys
	if m.searching {
		return m.handleSearchKey(msg)
	}

	// The signed-out account form owns most keys while focused
	if m.currentView == ViewAccount && !m.session.SignedIn() {
		return m.handleAuthFormKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.currentView = nextView(m.currentView)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.currentView = prevView(m.currentView)
		return m, nil

	case key.Matches(msg, m.keys.ViewBrowse):
		m.currentView = ViewBrowse
		return m, nil

	case key.Matches(msg, m.keys.ViewCart):
		m.currentView = ViewCart
		return m, nil

	case key.Matches(msg, m.keys.ViewWishlist):
		m.currentView = ViewWishlist
		return m, nil

	case key.Matches(msg, m.keys.ViewAccount):
		m.currentView = ViewAccount
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewBrowse
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewBrowse:
		return m.handleBrowseKey(msg)
	case ViewCart:
		return m.handleCartKey(msg)
	case ViewWishlist:
		return m.handleWishlistKey(msg)
	case ViewAccount:
		return m.handleAccountKey(msg)
	}

	return m, nil
}

func nextView(v View) View {
	switch v {
	case ViewBrowse:
		return ViewCart
	case ViewCart:
		return ViewWishlist
	case ViewWishlist:
		return ViewAccount
	default:
		return ViewBrowse
	}
}

func prevView(v View) View {
	switch v {
	case ViewBrowse:
		return ViewAccount
	case ViewCart:
		return ViewBrowse
	case ViewWishlist:
		return ViewCart
	default:
		return ViewWishlist
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderCommandBar())
	sections = append(sections, m.renderContent())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewBrowse:
		return m.renderBrowse()
	case ViewCart:
		return m.renderCart()
	case ViewWishlist:
		return m.renderWishlist()
	case ViewAccount:
		return m.renderAccount()
	default:
		return ""
	}
}

// renderNotice renders a blocking notice as a centered modal.
func (m Model) renderNotice() string {
	styles := m.theme.Styles()

	body := styles.WarningText.Bold(true).Render(m.modalMsg) + "\n\n" +
		styles.MutedText.Render("a: go to account   any other key: dismiss")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(min(m.width-4, 64)).
		Render(body)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// setStatus sets a transient header status and schedules its expiry.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(NoticeTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg(seq)
	})
}

func (m *Model) initSpinner() {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.spin = s
}

// Messages

type cartAddedMsg struct {
	product  catalog.Product
	quantity int
}

type statusExpiredMsg int

// Commands

func addToCartCmd(p catalog.Product, quantity int) tea.Cmd {
	return tea.Tick(AddToCartDelay, func(time.Time) tea.Msg {
		return cartAddedMsg{product: p, quantity: quantity}
	})
}

// handleCartAdded commits a pending add once the simulated delay elapses.
func (m Model) handleCartAdded(msg cartAddedMsg) (tea.Model, tea.Cmd) {
	m.adding = false
	m.addingID = ""

	prior := 0
	for _, it := range m.cart.Items() {
		if it.ProductID == msg.product.ID {
			prior = it.Quantity
			break
		}
	}

	m.cart.Add(msg.product)
	if prior > 0 || msg.quantity > 1 {
		m.cart.SetQuantity(msg.product.ID, prior+msg.quantity)
	}

	cmd := m.setStatus("Added " + msg.product.Name + " to cart")
	return m, cmd
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
