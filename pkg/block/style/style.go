// Package style composes a node's per-breakpoint class slots into the single
// presentational class string a renderer applies.
//
// The mobile slot is the smallest breakpoint and therefore the default: its
// tokens pass through unprefixed. Tablet and desktop tokens are scoped with
// the md: and lg: prefixes of the utility-CSS convention the documents use —
// unless a token already contains a scope separator, in which case it is
// treated as pre-qualified and passed through verbatim. Resolution is a pure
// function of the three slot strings; there is no cascading or inheritance
// across the tree.
package style

import (
	"strings"

	"github.com/pagesmith/pagesmith/pkg/block"
)

// Breakpoint prefixes applied to tablet and desktop tokens.
const (
	TabletPrefix  = "md:"
	DesktopPrefix = "lg:"
)

// Resolve composes the three breakpoint slot strings into one space-joined
// class string: mobile tokens unprefixed, tablet tokens under md:, desktop
// tokens under lg:, concatenated mobile → tablet → desktop. Empty slots
// contribute nothing. Tokens that already contain ":" are passed through
// unchanged.
func Resolve(mobile, tablet, desktop string) string {
	var out []string
	out = appendTokens(out, mobile, "")
	out = appendTokens(out, tablet, TabletPrefix)
	out = appendTokens(out, desktop, DesktopPrefix)
	return strings.Join(out, " ")
}

func appendTokens(out []string, slot, prefix string) []string {
	for _, tok := range strings.Fields(slot) {
		if prefix == "" || strings.Contains(tok, ":") {
			out = append(out, tok)
			continue
		}
		out = append(out, prefix+tok)
	}
	return out
}

// NodeClass returns the full presentational class string for a node: its
// legacy single-string class followed by the resolved responsive slots.
func NodeClass(n *block.Node) string {
	resolved := ""
	if n.Responsive != nil {
		resolved = Resolve(n.Responsive.Mobile, n.Responsive.Tablet, n.Responsive.Desktop)
	}
	switch {
	case n.ClassName == "":
		return resolved
	case resolved == "":
		return n.ClassName
	default:
		return n.ClassName + " " + resolved
	}
}
