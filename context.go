package cardex

import (
	"maps"
	"regexp"
	"strings"
)

// Heading is a section heading encountered while walking a page.
type Heading struct {
	Level int
	Text  string // normalized heading text
	ID    string // anchor id, if any
}

// Matcher tests a heading and returns the value to assign when it matches.
type Matcher func(h Heading) (string, bool)

// RuleKind identifies which part of the extraction context a rule updates.
type RuleKind int

// RuleKind constants.
const (
	RuleSuppress RuleKind = iota
	RuleVersion
	RuleCategory
	RuleAttr
)

// HeadingRule pairs a heading predicate with the context field it updates.
type HeadingRule struct {
	Kind  RuleKind
	Key   string // attribute name for RuleAttr
	Match Matcher

	// Also lists attribute values assigned together with this rule.
	Also map[string]string

	// KeepSuppressed leaves an active suppression in place when the rule
	// matches, so subsections of a suppressed section stay suppressed.
	KeepSuppressed bool
}

// target identifies the context slot a rule writes to. Only the first
// matching rule per target applies for a single heading.
func (r HeadingRule) target() string {
	switch r.Kind {
	case RuleVersion:
		return "version"
	case RuleCategory:
		return "category"
	case RuleAttr:
		return "attr:" + r.Key
	}
	return "suppress"
}

// ExtractionContext describes where in the document the walker currently is.
// Empty strings mean "not set".
type ExtractionContext struct {
	Version    string
	Category   string
	Suppressed bool
	Attrs      map[string]string
}

// Clone returns a copy of the context that shares no state with c.
func (c ExtractionContext) Clone() ExtractionContext {
	c.Attrs = maps.Clone(c.Attrs)
	if c.Attrs == nil {
		c.Attrs = map[string]string{}
	}
	return c
}

// Tracker maintains the extraction context for a single document. It is
// updated only by headings, in document order.
type Tracker struct {
	rules           []HeadingRule
	defaultCategory string
	ctx             ExtractionContext
}

// NewTracker returns a tracker initialized with the profile's defaults.
func NewTracker(p *Profile) *Tracker {
	return &Tracker{
		rules:           p.Rules,
		defaultCategory: p.Defaults.Category,
		ctx:             p.Defaults.Clone(),
	}
}

// Observe applies the first matching rules to the context. It reports whether
// the heading was recognized by any rule. Unrecognized headings leave the
// context unchanged. A suppression is lifted only by a matching rule that is
// not marked KeepSuppressed.
func (t *Tracker) Observe(h Heading) bool {
	for _, r := range t.rules {
		if r.Kind != RuleSuppress {
			continue
		}
		if _, ok := r.Match(h); ok {
			t.ctx.Suppressed = true
			t.ctx.Category = ""
			return true
		}
	}

	applied := make(map[string]bool)
	lift := false
	for _, r := range t.rules {
		if r.Kind == RuleSuppress || applied[r.target()] {
			continue
		}
		v, ok := r.Match(h)
		if !ok {
			continue
		}
		applied[r.target()] = true
		if !r.KeepSuppressed {
			lift = true
		}

		switch r.Kind {
		case RuleVersion:
			t.ctx.Version = v
		case RuleCategory:
			t.ctx.Category = v
		case RuleAttr:
			t.ctx.Attrs[r.Key] = v
		}
		for k, av := range r.Also {
			if !applied["attr:"+k] {
				t.ctx.Attrs[k] = av
			}
		}
	}
	if len(applied) == 0 {
		return false
	}

	if lift {
		t.ctx.Suppressed = false
	}
	if !t.ctx.Suppressed && t.ctx.Category == "" {
		t.ctx.Category = t.defaultCategory
	}
	return true
}

// Context returns a snapshot of the current context.
func (t *Tracker) Context() ExtractionContext {
	return t.ctx.Clone()
}

// ContainsAll matches headings whose lower-cased text contains every phrase.
func ContainsAll(value string, phrases ...string) Matcher {
	return func(h Heading) (string, bool) {
		text := strings.ToLower(h.Text)
		for _, p := range phrases {
			if !strings.Contains(text, p) {
				return "", false
			}
		}
		return value, true
	}
}

// TitleIs matches headings whose lower-cased text equals one of titles.
func TitleIs(value string, titles ...string) Matcher {
	return func(h Heading) (string, bool) {
		text := strings.ToLower(h.Text)
		for _, t := range titles {
			if text == t {
				return value, true
			}
		}
		return "", false
	}
}

// Pattern matches lower-cased heading text against re and expands template
// with the submatches, e.g. "codex $1".
func Pattern(re *regexp.Regexp, template string) Matcher {
	return func(h Heading) (string, bool) {
		text := strings.ToLower(h.Text)
		m := re.FindStringSubmatchIndex(text)
		if m == nil {
			return "", false
		}
		return string(re.ExpandString(nil, template, text, m)), true
	}
}

// IDContains matches headings whose anchor id contains substr.
func IDContains(value, substr string) Matcher {
	return func(h Heading) (string, bool) {
		if h.ID != "" && strings.Contains(h.ID, substr) {
			return value, true
		}
		return "", false
	}
}

// IDPrefix matches headings whose anchor id starts with prefix. Wiki anchors
// for repeated titles get numeric suffixes (Foo_2, Foo_3), which still match.
func IDPrefix(value, prefix string) Matcher {
	return func(h Heading) (string, bool) {
		if h.ID != "" && strings.HasPrefix(h.ID, prefix) {
			return value, true
		}
		return "", false
	}
}

// IDIs matches headings whose anchor id equals id.
func IDIs(value, id string) Matcher {
	return func(h Heading) (string, bool) {
		if h.ID == id {
			return value, true
		}
		return "", false
	}
}
