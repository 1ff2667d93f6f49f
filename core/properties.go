package core

// Properties is a set of string-valued event properties keyed by name.
type Properties map[string]string

// MergedWith returns a new set containing the union of p and global.
// On key collision the global value wins. A nil receiver yields a copy of
// global, so callers that pass no per-call properties send the global set
// verbatim.
func (p Properties) MergedWith(global Properties) Properties {
	if p == nil {
		return global.Clone()
	}
	merged := make(Properties, len(p)+len(global))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range global {
		merged[k] = v
	}
	return merged
}

// Clone returns an independent copy of p. A nil set clones to an empty,
// non-nil set.
func (p Properties) Clone() Properties {
	clone := make(Properties, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}
