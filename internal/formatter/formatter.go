package formatter

import (
	"fmt"

	"github.com/yildizm/osanpo/internal/walk"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(snap *walk.Snapshot) ([]byte, error)
}

// New returns the formatter for an output format name
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	case "text", "terminal", "":
		return NewTerminal(color), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
