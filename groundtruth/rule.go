// SPDX-License-Identifier: MIT

package groundtruth

import (
	"fmt"
	"strings"
)

// Rule selects how target sets are derived from the layering.
type Rule int

const (
	// Children targets the neighbors one layer below.
	Children Rule = iota
	// Descendants targets the whole downward closure.
	Descendants
)

// String returns the lowercase rule name used in configuration files.
func (r Rule) String() string {
	switch r {
	case Children:
		return "children"
	case Descendants:
		return "descendants"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// ParseRule is the inverse of Rule.String. The empty string selects Children.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "children":
		return Children, nil
	case "descendants":
		return Descendants, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRule, s)
	}
}
