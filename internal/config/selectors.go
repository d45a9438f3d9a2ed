package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// KnownSelectors lists the palette selectors the UI looks up. A configured
// color may also name a leading part of one, such as "flash".
var KnownSelectors = []string{
	"divider",
	"divider dragging",
	"divider boundary",
	"toggle",
	"pane title",
	"flash text",
	"flash warning",
	"status",
}

func isKnownSelector(selector string) bool {
	fields := strings.Fields(selector)
	for _, known := range KnownSelectors {
		knownFields := strings.Fields(known)
		if len(fields) <= len(knownFields) && slices.Equal(fields, knownFields[:len(fields)]) {
			return true
		}
	}
	return false
}

// UnknownSelectorWarnings reports configured colors that no part of the UI
// uses, suggesting the closest known selector when there is one.
func (c *Config) UnknownSelectorWarnings() []string {
	var unknown []string
	for selector := range c.UI.Colors {
		if !isKnownSelector(selector) {
			unknown = append(unknown, selector)
		}
	}
	sort.Strings(unknown)

	var warnings []string
	for _, selector := range unknown {
		warning := fmt.Sprintf("ui.colors: unknown selector %q", selector)
		if matches := fuzzy.Find(selector, KnownSelectors); len(matches) > 0 {
			warning += fmt.Sprintf("; did you mean %q?", matches[0].Str)
		}
		warnings = append(warnings, warning)
	}
	return warnings
}
