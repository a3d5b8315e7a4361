package navigation

import "strings"

// FinancePrefixes are the route prefixes grouped under the finance menu.
var FinancePrefixes = []string{
	PathFinances,
	PathRevenue,
	PathFines,
	PathPayments,
	PathInvoices,
	PathExpenses,
	PathReports,
}

// IsActive reports whether the item at itemPath matches the location exactly.
func IsActive(location string, itemPath string) bool {
	return location == itemPath
}

// IsFinancePath reports whether the location falls under one of the finance prefixes.
func IsFinancePath(location string) bool {
	for _, prefix := range FinancePrefixes {
		if strings.HasPrefix(location, prefix) {
			return true
		}
	}

	return false
}

// AriaCurrent returns the aria-current value for an item, empty when inactive.
func AriaCurrent(active bool) string {
	if active {
		return "page"
	}

	return ""
}
