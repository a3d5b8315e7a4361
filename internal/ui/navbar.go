package ui

import (
	"net/url"

	"github.com/bornholm/libraryms/internal/navigation"
)

const (
	Brand        = "LibraryMS"
	NavigatePath = "/ui/navigate"
	SearchPath   = "/ui/search"
	PanelsPrefix = "/ui/panels/"
)

// NavbarItem is a menu item ready to be rendered.
type NavbarItem struct {
	Label       string
	URL         string
	Icon        string
	Description string
	AriaLabel   string
	AriaCurrent string
	Active      bool
	Badge       int
}

func (i NavbarItem) HasBadge() bool {
	return i.Badge > 0
}

type NavbarTemplateData struct {
	Brand       string
	BrandIcon   string
	FinanceIcon string
	SearchIcon  string
	CurrentPath string
	SearchQuery string

	PrimaryItems       []NavbarItem
	MobilePrimaryItems []NavbarItem
	FinanceItems       []NavbarItem
	MobileFinanceItems []NavbarItem

	FinanceActive    bool
	FinanceAriaLabel string
	PendingFines     int
	TotalRevenue     string

	IsMobileMenuOpen  bool
	IsFinanceMenuOpen bool
}

func (d NavbarTemplateData) HasPendingFines() bool {
	return d.PendingFines > 0
}

// NavbarOptions carries the values the navbar displays but does not own.
type NavbarOptions struct {
	PendingFines int
	TotalRevenue int64
	Formatter    *navigation.CurrencyFormatter
}

func NewNavbarTemplateData(state *navigation.State, catalog *navigation.Catalog, opts NavbarOptions) NavbarTemplateData {
	location := state.CurrentPath()

	formatter := opts.Formatter
	if formatter == nil {
		formatter = navigation.NewCurrencyFormatter(navigation.DefaultCurrencyLocale, navigation.DefaultCurrencySymbol)
	}

	pendingFines := max(opts.PendingFines, 0)

	data := NavbarTemplateData{
		Brand:             Brand,
		BrandIcon:         string(navigation.IconBrand),
		FinanceIcon:       string(navigation.IconFinance),
		SearchIcon:        string(navigation.IconSearch),
		CurrentPath:       location,
		SearchQuery:       state.SearchQuery,
		FinanceActive:     navigation.IsFinancePath(location),
		FinanceAriaLabel:  FinanceAriaLabel(pendingFines),
		PendingFines:      pendingFines,
		TotalRevenue:      formatter.Format(opts.TotalRevenue),
		IsMobileMenuOpen:  state.MobileMenu.IsOpen(),
		IsFinanceMenuOpen: state.FinanceMenu.IsOpen(),
	}

	for _, item := range catalog.Primary() {
		data.PrimaryItems = append(data.PrimaryItems, newNavbarItem(item, location, item.Path))
		data.MobilePrimaryItems = append(data.MobilePrimaryItems, newNavbarItem(item, location, PanelLinkURL(navigation.PanelMobile, item.Path)))
	}

	for _, item := range catalog.Finance(pendingFines) {
		desktop := newNavbarItem(item, location, PanelLinkURL(navigation.PanelFinance, item.Path))
		// Dropdown entries are highlighted through the trigger only.
		desktop.Active = false
		desktop.AriaCurrent = ""

		data.FinanceItems = append(data.FinanceItems, desktop)
		data.MobileFinanceItems = append(data.MobileFinanceItems, newNavbarItem(item, location, PanelLinkURL(navigation.PanelMobile, item.Path)))
	}

	return data
}

func newNavbarItem(item navigation.MenuItem, location string, href string) NavbarItem {
	active := navigation.IsActive(location, item.Path)

	return NavbarItem{
		Label:       item.Label,
		URL:         href,
		Icon:        string(item.Icon),
		Description: item.Description,
		AriaLabel:   item.AccessibleLabel,
		AriaCurrent: navigation.AriaCurrent(active),
		Active:      active,
		Badge:       item.Badge,
	}
}

// PanelLinkURL returns the URL of a link living inside a panel: following
// it closes the panel, then redirects to the destination.
func PanelLinkURL(panel navigation.Panel, to string) string {
	query := url.Values{}
	query.Set("panel", string(panel))
	query.Set("to", to)

	return NavigatePath + "?" + query.Encode()
}

func FinanceAriaLabel(pendingFines int) string {
	if pendingFines <= 0 {
		return "Finance menu"
	}

	return "Finance menu, " + navigation.PendingFines(pendingFines)
}
