package catalog

import (
	"fmt"
	"strings"
)

// ConsoleFormatter provides console output formatting for entries
type ConsoleFormatter struct {
	ShowDetails bool
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(showDetails bool) *ConsoleFormatter {
	return &ConsoleFormatter{ShowDetails: showDetails}
}

// FormatEntryList formats a list of entries for console display
func (f *ConsoleFormatter) FormatEntryList(entries []Entry) string {
	if len(entries) == 0 {
		return "No movies rated yet"
	}

	var sb strings.Builder

	sb.WriteString("\nRated movie")
	if len(entries) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(entries))

	for i, entry := range entries {
		isLast := i == len(entries)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		fmt.Fprintf(&sb, "%s── %s [%s] (ID: %s)\n", prefix, entry.Title, entry.Rating, entry.ID)

		if f.ShowDetails {
			indent := "│   "
			if isLast {
				indent = "    "
			}
			if entry.Poster != "" {
				fmt.Fprintf(&sb, "%sPoster: %s\n", indent, entry.Poster)
			}
			if entry.Description != "" {
				fmt.Fprintf(&sb, "%sMy thought: %s\n", indent, entry.Description)
			}
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatEntry formats a single entry the way the detail popup shows it
func (f *ConsoleFormatter) FormatEntry(entry Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", entry.Title)
	fmt.Fprintf(&sb, "  Rating: %s\n", entry.Rating)
	fmt.Fprintf(&sb, "  Poster: %s\n", entry.Poster)
	fmt.Fprintf(&sb, "  My thought:\n    %s\n", entry.Description)
	return sb.String()
}
