package feed

import (
	"strings"

	"golang.org/x/text/cases"
)

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// MatchAny keeps entries where at least one keyword appears in the title or
// description. Nil or empty keywords keeps everything.
func (f *Filterer) MatchAny(entries []Entry, keywords []string) []Entry {
	if len(keywords) == 0 {
		return entries
	}

	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		for _, keyword := range keywords {
			if f.entryContains(entry, keyword) {
				matched = append(matched, entry)
				break
			}
		}
	}

	return matched
}

// Run applies the strict skill filter: every required term must appear in the
// title or description, then any entry containing an exclude term is dropped.
// Required terms are applied before exclusions.
func (f *Filterer) Run(entries []Entry, requiredAll []string, excludeAny []string) []Entry {
	if len(entries) == 0 {
		return entries
	}

	filtered := entries

	if len(requiredAll) > 0 {
		kept := make([]Entry, 0, len(filtered))
		for _, entry := range filtered {
			if f.containsAll(entry, requiredAll) {
				kept = append(kept, entry)
			}
		}
		filtered = kept
	}

	if len(excludeAny) > 0 {
		kept := make([]Entry, 0, len(filtered))
		for _, entry := range filtered {
			if !f.containsAny(entry, excludeAny) {
				kept = append(kept, entry)
			}
		}
		filtered = kept
	}

	return filtered
}

func (f *Filterer) containsAll(entry Entry, terms []string) bool {
	for _, term := range terms {
		if !f.entryContains(entry, term) {
			return false
		}
	}
	return true
}

func (f *Filterer) containsAny(entry Entry, terms []string) bool {
	for _, term := range terms {
		if f.entryContains(entry, term) {
			return true
		}
	}
	return false
}

func (f *Filterer) entryContains(entry Entry, term string) bool {
	fold := cases.Fold()
	needle := fold.String(term)

	return strings.Contains(fold.String(entry.Title), needle) ||
		strings.Contains(fold.String(entry.Description), needle)
}
