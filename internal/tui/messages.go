// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/pdiddy/cord-explorer/internal/dashboard"

// ViewMsg carries a freshly computed view.
type ViewMsg struct {
	View dashboard.View
}

// ErrorMsg reports a failure to load the dataset.
type ErrorMsg struct {
	Err error
}
