package navigation

// Icon is a symbolic reference to a glyph. Its value is the Font Awesome
// class rendered by the templates.
type Icon string

const (
	IconBrand        Icon = "fa-book-open"
	IconHome         Icon = "fa-home"
	IconBooks        Icon = "fa-book-open"
	IconMembers      Icon = "fa-users"
	IconTransactions Icon = "fa-exchange-alt"
	IconDashboard    Icon = "fa-tachometer-alt"
	IconFinance      Icon = "fa-dollar-sign"
	IconAnalytics    Icon = "fa-chart-bar"
	IconRevenue      Icon = "fa-chart-line"
	IconFines        Icon = "fa-receipt"
	IconPayments     Icon = "fa-credit-card"
	IconInvoices     Icon = "fa-file-alt"
	IconExpenses     Icon = "fa-wallet"
	IconSearch       Icon = "fa-search"
)
