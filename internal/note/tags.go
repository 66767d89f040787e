package note

import "strings"

// Tags is an ordered set of labels. Membership and equality ignore order;
// iteration follows insertion order.
type Tags []string

// NormalizeTags trims each tag, drops duplicates and keeps first-seen order.
// An empty tag is rejected.
func NormalizeTags(raw []string) (Tags, error) {
	tags := make(Tags, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, ErrEmptyTag
		}
		tags.Add(t)
	}
	return tags, nil
}

// Contains reports whether tag is in the set.
func (t Tags) Contains(tag string) bool {
	for _, existing := range t {
		if existing == tag {
			return true
		}
	}
	return false
}

// Add appends tag if absent. Returns true if the set changed.
func (t *Tags) Add(tag string) bool {
	if t.Contains(tag) {
		return false
	}
	*t = append(*t, tag)
	return true
}

// Remove deletes tag while preserving the order of the rest.
// Returns true if the set changed.
func (t *Tags) Remove(tag string) bool {
	for i, existing := range *t {
		if existing == tag {
			*t = append((*t)[:i], (*t)[i+1:]...)
			return true
		}
	}
	return false
}

// Equal reports set equality.
func (t Tags) Equal(other Tags) bool {
	if len(t) != len(other) {
		return false
	}
	for _, tag := range t {
		if !other.Contains(tag) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. A nil set clones to an empty one so
// encoders always emit a list.
func (t Tags) Clone() Tags {
	out := make(Tags, len(t))
	copy(out, t)
	return out
}

// String joins the tags for display.
func (t Tags) String() string {
	return strings.Join(t, ", ")
}
