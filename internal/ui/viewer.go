package ui

import "ctr/internal/domain"

// Viewer displays a consolidated report interactively
type Viewer interface {
	View(report *domain.Report) error
}
