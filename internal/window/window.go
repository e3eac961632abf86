// internal/window/window.go
package window

import (
	"fmt"
	"regexp"
)

// Handle is an opaque OS window identifier (HWND on Windows).
type Handle uintptr

func (h Handle) String() string {
	return fmt.Sprintf("0x%X", uintptr(h))
}

// Info describes one enumerated top-level window.
type Info struct {
	Handle Handle
	Title  string
	Class  string
}

// Matcher selects windows by title and class. A nil pattern matches anything.
type Matcher struct {
	Title *regexp.Regexp
	Class *regexp.Regexp
}

// NewMatcher compiles the title and class patterns. Empty patterns match all.
func NewMatcher(title, class string) (*Matcher, error) {
	m := &Matcher{}
	if title != "" {
		re, err := regexp.Compile(title)
		if err != nil {
			return nil, fmt.Errorf("title pattern %q: %w", title, err)
		}
		m.Title = re
	}
	if class != "" {
		re, err := regexp.Compile(class)
		if err != nil {
			return nil, fmt.Errorf("class pattern %q: %w", class, err)
		}
		m.Class = re
	}
	return m, nil
}

func (m *Matcher) Match(w Info) bool {
	if m.Title != nil && !m.Title.MatchString(w.Title) {
		return false
	}
	if m.Class != nil && !m.Class.MatchString(w.Class) {
		return false
	}
	return true
}

// Filter returns the handles of the windows that match, in enumeration order.
func (m *Matcher) Filter(all []Info) []Handle {
	var out []Handle
	for _, w := range all {
		if m.Match(w) {
			out = append(out, w.Handle)
		}
	}
	return out
}

// NewHandle returns the one handle that is in after but not in before.
// It reports false unless after holds exactly one more handle than before.
func NewHandle(before, after []Handle) (Handle, bool) {
	if len(after) != len(before)+1 {
		return 0, false
	}
	seen := make(map[Handle]struct{}, len(before))
	for _, h := range before {
		seen[h] = struct{}{}
	}
	for _, h := range after {
		if _, ok := seen[h]; !ok {
			return h, true
		}
	}
	return 0, false
}
