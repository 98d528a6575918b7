// Package format renders numbers and enumerations for display. Every
// response that shows money, percentages, large counts or status labels goes
// through these helpers so the API stays consistent.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money renders an amount with thousands separators and two decimals,
// followed by the currency code: "50,000.00 ETB".
func Money(v decimal.Decimal, currency string) string {
	fixed := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Beyond int64; left ungrouped rather than rounded.
		return sign + fixed + " " + currency
	}
	return sign + printer.Sprintf("%d", n) + "." + frac + " " + currency
}

// Percent renders a ratio already expressed in percent: "8.5%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Grouped renders an integer with thousands separators: "125,000".
func Grouped(n int64) string {
	return printer.Sprintf("%d", n)
}

// Count abbreviates large counts: millions with one decimal ("1.2M"),
// thousands with none ("45K"). Smaller values are printed as is.
func Count(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

var labels = map[string]string{
	// campaign status
	"draft":            "Draft",
	"pending_approval": "Pending Approval",
	"scheduled":        "Scheduled",
	"running":          "Running",
	"paused":           "Paused",
	"completed":        "Completed",
	"failed":           "Failed",
	"cancelled":        "Cancelled",
	// campaign type
	"incentive":     "Incentive",
	"informational": "Informational",
	"win_back":      "Win-back",
	"info":          "Info",
	// schedule / caps
	"immediate":    "Immediate",
	"daily":        "Daily",
	"weekly":       "Weekly",
	"monthly":      "Monthly",
	"unlimited":    "Unlimited",
	"once_per_day": "Once Per Day",
	// rewards
	"cashback": "Cashback",
	"bonus":    "Bonus",
	"other":    "Other",
	// accounts
	"active":   "Active",
	"inactive": "Inactive",
	"frozen":   "Frozen (No Outgoing)",
	// segments
	"behavioral":  "Behavioral",
	"demographic": "Demographic",
	"activity":    "Activity",
	"risk":        "Risk",
	"value":       "Value",
	"custom":      "Custom",
	// decisions and log events
	"approved":  "Approved",
	"rejected":  "Rejected",
	"created":   "Created",
	"submitted": "Submitted",
	// reports
	"campaign": "Campaign",
	"pdf":      "PDF",
	"excel":    "Excel",
	"csv":      "CSV",
	"sql":      "SQL Query",
	"filter":   "Filter Builder",
}

// Label maps an enumeration value to its display string. Unknown values
// are returned unchanged.
func Label(v string) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return v
}
