package navigation

import (
	"fmt"
	"sync"
)

// MenuItem is a single navigable destination with its display metadata.
type MenuItem struct {
	Path            string
	Label           string
	Icon            Icon
	Badge           int
	Description     string
	AccessibleLabel string
}

// HasBadge reports whether the item carries a badge worth displaying.
func (i MenuItem) HasBadge() bool {
	return i.Badge > 0
}

const (
	PathHome         = "/"
	PathBooks        = "/books"
	PathMembers      = "/members"
	PathTransactions = "/transactions"
	PathDashboard    = "/dashboard"
	PathFinances     = "/finances"
	PathRevenue      = "/revenue"
	PathFines        = "/fines"
	PathPayments     = "/payments"
	PathInvoices     = "/invoices"
	PathExpenses     = "/expenses"
	PathReports      = "/reports"
)

var primaryItems = []MenuItem{
	{Path: PathHome, Label: "Home", Icon: IconHome},
	{Path: PathBooks, Label: "Books", Icon: IconBooks},
	{Path: PathMembers, Label: "Members", Icon: IconMembers},
	{Path: PathTransactions, Label: "Transactions", Icon: IconTransactions},
	{Path: PathDashboard, Label: "Dashboard", Icon: IconDashboard},
}

// PrimaryItems returns the fixed, ordered list of primary destinations.
func PrimaryItems() []MenuItem {
	items := make([]MenuItem, len(primaryItems))
	copy(items, primaryItems)
	return items
}

// FinanceItems returns the fixed, ordered list of finance destinations.
// The fines entry carries the pending fines count as its badge.
func FinanceItems(pendingFines int) []MenuItem {
	if pendingFines < 0 {
		pendingFines = 0
	}

	return []MenuItem{
		{
			Path:            PathFinances,
			Label:           "Finance Dashboard",
			Icon:            IconAnalytics,
			Description:     "Overview & Analytics",
			AccessibleLabel: "View finance dashboard with overview and analytics",
		},
		{
			Path:            PathRevenue,
			Label:           "Revenue Tracking",
			Icon:            IconRevenue,
			Description:     "Income & Subscriptions",
			AccessibleLabel: "Track revenue, income and subscriptions",
		},
		{
			Path:            PathFines,
			Label:           "Fines Management",
			Icon:            IconFines,
			Badge:           pendingFines,
			Description:     "Overdue & Penalties",
			AccessibleLabel: fmt.Sprintf("Manage fines, overdue items and penalties. %s", PendingFines(pendingFines)),
		},
		{
			Path:            PathPayments,
			Label:           "Payment Processing",
			Icon:            IconPayments,
			Description:     "Transactions & Methods",
			AccessibleLabel: "Process payments, view transactions and payment methods",
		},
		{
			Path:            PathInvoices,
			Label:           "Invoices & Billing",
			Icon:            IconInvoices,
			Description:     "Generate & Track",
			AccessibleLabel: "Generate and track invoices and billing",
		},
		{
			Path:            PathExpenses,
			Label:           "Expense Management",
			Icon:            IconExpenses,
			Description:     "Costs & Budget",
			AccessibleLabel: "Manage expenses, costs and budget",
		},
		{
			Path:            PathReports,
			Label:           "Financial Reports",
			Icon:            IconAnalytics,
			Description:     "Analytics & Insights",
			AccessibleLabel: "View financial reports, analytics and insights",
		},
	}
}

// PendingFines returns "<n> pending fine" or "<n> pending fines".
func PendingFines(count int) string {
	if count == 1 {
		return "1 pending fine"
	}

	return fmt.Sprintf("%d pending fines", count)
}

// Catalog supplies both menu lists. The finance list is only rebuilt
// when the pending fines count changes.
type Catalog struct {
	mutex        sync.Mutex
	pendingFines int
	finance      []MenuItem
}

func (c *Catalog) Primary() []MenuItem {
	return PrimaryItems()
}

func (c *Catalog) Finance(pendingFines int) []MenuItem {
	if pendingFines < 0 {
		pendingFines = 0
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.finance == nil || c.pendingFines != pendingFines {
		c.finance = FinanceItems(pendingFines)
		c.pendingFines = pendingFines
	}

	items := make([]MenuItem, len(c.finance))
	copy(items, c.finance)

	return items
}

// Lookup reports whether path is one of the catalog destinations.
func (c *Catalog) Lookup(path string) (MenuItem, bool) {
	for _, item := range primaryItems {
		if item.Path == path {
			return item, true
		}
	}

	for _, item := range c.Finance(c.currentPendingFines()) {
		if item.Path == path {
			return item, true
		}
	}

	return MenuItem{}, false
}

func (c *Catalog) currentPendingFines() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.pendingFines
}

func NewCatalog() *Catalog {
	return &Catalog{}
}
