// Package dashboard models the customer dashboard shell: which sub-view is
// selected, whether the account data has resolved, and the presentational
// blocks each sub-view shows.
package dashboard

import "fmt"

// View is one of the mutually exclusive dashboard panels.
type View int

// The zero value is ViewMain so an unset selector lands on the overview.
const (
	ViewMain View = iota
	ViewVerification
	ViewWithdrawal
	ViewAccounts
	ViewLiveChat
	ViewSavings
	ViewSettings
	ViewDeposit
)

var viewNames = [...]string{
	ViewMain:         "main",
	ViewVerification: "verification",
	ViewWithdrawal:   "withdrawal",
	ViewAccounts:     "accounts",
	ViewLiveChat:     "live-chat",
	ViewSavings:      "savings",
	ViewSettings:     "settings",
	ViewDeposit:      "deposit",
}

var viewLabels = [...]string{
	ViewMain:         "Dashboard",
	ViewVerification: "Verification",
	ViewWithdrawal:   "Withdrawal",
	ViewAccounts:     "Accounts",
	ViewLiveChat:     "Live Chat",
	ViewSavings:      "Savings",
	ViewSettings:     "Settings",
	ViewDeposit:      "Deposit",
}

// Views lists every view in sidebar order.
func Views() []View {
	out := make([]View, len(viewNames))
	for i := range viewNames {
		out[i] = View(i)
	}
	return out
}

// Valid reports whether v is a member of the closed set.
func (v View) Valid() bool {
	return v >= ViewMain && int(v) < len(viewNames)
}

// String returns the wire name used in URLs, e.g. "live-chat".
func (v View) String() string {
	if !v.Valid() {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// Label returns the sidebar caption.
func (v View) Label() string {
	if !v.Valid() {
		return ""
	}
	return viewLabels[v]
}

// ParseView maps a wire name to a View. The empty string selects ViewMain.
func ParseView(name string) (View, error) {
	if name == "" {
		return ViewMain, nil
	}
	for i, n := range viewNames {
		if n == name {
			return View(i), nil
		}
	}
	return ViewMain, fmt.Errorf("unknown view %q", name)
}

// Navigator is the in-memory "current view" selector. It starts on
// ViewMain, changes only on explicit navigation and keeps no history.
type Navigator struct {
	current View
}

// NewNavigator returns a selector positioned on ViewMain.
func NewNavigator() *Navigator {
	return &Navigator{current: ViewMain}
}

// Current returns the selected view.
func (n *Navigator) Current() View {
	return n.current
}

// Navigate selects v. Values outside the closed set are rejected and the
// selection is left unchanged.
func (n *Navigator) Navigate(v View) error {
	if !v.Valid() {
		return fmt.Errorf("unknown view %d", int(v))
	}
	n.current = v
	return nil
}

// Reset returns to ViewMain, as a full reload does.
func (n *Navigator) Reset() {
	n.current = ViewMain
}

// NavItem is one sidebar entry.
type NavItem struct {
	View   View
	Label  string
	Active bool
}

// NavItems returns the sidebar entries with the current view flagged.
func (n *Navigator) NavItems() []NavItem {
	views := Views()
	items := make([]NavItem, len(views))
	for i, v := range views {
		items[i] = NavItem{View: v, Label: v.Label(), Active: v == n.current}
	}
	return items
}
