package editor

// selection is an ordered set of node identifiers. The first element is the
// primary selection: the single target for inspector edits and paste.
type selection []string

// toggle implements select semantics: non-additive replaces the selection
// with {id}; additive toggles membership while preserving the order of the
// other members, appending id as the new last member if newly added.
func (s selection) toggle(id string, additive bool) selection {
	if !additive {
		return selection{id}
	}
	for i, existing := range s {
		if existing == id {
			out := make(selection, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			return out
		}
	}
	out := make(selection, len(s), len(s)+1)
	copy(out, s)
	return append(out, id)
}

// prune drops every identifier not present in live, preserving order.
// Identifiers of removed nodes must never survive a mutation.
func (s selection) prune(live map[string]bool) selection {
	out := s[:0:0]
	for _, id := range s {
		if live[id] {
			out = append(out, id)
		}
	}
	return out
}

// primary returns the first selected identifier.
func (s selection) primary() (string, bool) {
	if len(s) == 0 {
		return "", false
	}
	return s[0], true
}
