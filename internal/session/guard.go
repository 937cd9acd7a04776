package session

// Decision is the outcome of a route guard policy.
type Decision int

const (
	// DecisionWait: the session is still resolving. Render neither the
	// protected content nor a redirect.
	DecisionWait Decision = iota
	// DecisionAllow: render the protected content.
	DecisionAllow
	// DecisionRedirectLogin: send the visitor to the login entry point.
	DecisionRedirectLogin
)

// RequireAuthenticated gates routes that any logged-in user may see.
func RequireAuthenticated(s Snapshot) Decision {
	if s.Loading() {
		return DecisionWait
	}
	if s.IsLoggedIn() {
		return DecisionAllow
	}
	return DecisionRedirectLogin
}

// RequireAdmin gates admin-only routes.
func RequireAdmin(s Snapshot) Decision {
	if s.Loading() {
		return DecisionWait
	}
	if !s.IsLoggedIn() {
		return DecisionRedirectLogin
	}
	if s.IsAdmin() {
		return DecisionAllow
	}
	return DecisionRedirectLogin
}

// NavItem is a navigation entry inside an already-authenticated area.
type NavItem struct {
	Label     string
	Path      string
	AdminOnly bool
}

// VisibleNav filters admin-only entries out for non-admin users. Composing
// the guards this way avoids a second redirect cycle inside an area the
// authenticated policy already allowed.
func VisibleNav(s Snapshot, items []NavItem) []NavItem {
	if s.IsAdmin() {
		return items
	}
	visible := make([]NavItem, 0, len(items))
	for _, item := range items {
		if !item.AdminOnly {
			visible = append(visible, item)
		}
	}
	return visible
}
