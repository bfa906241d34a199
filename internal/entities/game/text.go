package game

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Languages lists the supported output languages, in report column order.
var Languages = []language.Tag{language.English, language.Japanese}

// BilingualText holds one localized string per supported language.
type BilingualText struct {
	EN string `json:"en"`
	JA string `json:"ja"`
}

// Get returns the text for the given language tag. Unknown tags fall back to
// English.
func (t BilingualText) Get(tag language.Tag) string {
	if tag == language.Japanese {
		return t.JA
	}
	return t.EN
}

// Set stores the text for the given language tag.
func (t *BilingualText) Set(tag language.Tag, s string) {
	if tag == language.Japanese {
		t.JA = s
		return
	}
	t.EN = s
}

// StringTable is the merged localization table: template id to bilingual
// text. It keeps a sorted key index so candidate subsets (prefix and
// substring scans) come out in a stable order run after run.
type StringTable struct {
	entries map[string]BilingualText
	keys    []string
	sorted  bool
}

// NewStringTable creates an empty table.
func NewStringTable() *StringTable {
	return &StringTable{entries: make(map[string]BilingualText)}
}

// Set stores text for id in the given language, creating the entry if
// needed. Later writes win, which is how override files layer on top of the
// base CSVs.
func (st *StringTable) Set(id string, tag language.Tag, text string) {
	entry, ok := st.entries[id]
	if !ok {
		st.keys = append(st.keys, id)
		st.sorted = false
	}
	entry.Set(tag, text)
	st.entries[id] = entry
}

// Get returns the entry for id.
func (st *StringTable) Get(id string) (BilingualText, bool) {
	entry, ok := st.entries[id]
	return entry, ok
}

// Has reports whether id is present.
func (st *StringTable) Has(id string) bool {
	_, ok := st.entries[id]
	return ok
}

// Len returns the number of entries.
func (st *StringTable) Len() int {
	return len(st.entries)
}

// Keys returns all ids in lexicographic order. The returned slice is shared;
// callers must not mutate it.
func (st *StringTable) Keys() []string {
	if !st.sorted {
		sort.Strings(st.keys)
		st.sorted = true
	}
	return st.keys
}

// KeysWithPrefix returns the sorted ids beginning with prefix.
func (st *StringTable) KeysWithPrefix(prefix string) []string {
	keys := st.Keys()
	start := sort.SearchStrings(keys, prefix)
	var out []string
	for _, k := range keys[start:] {
		if !strings.HasPrefix(k, prefix) {
			break
		}
		out = append(out, k)
	}
	return out
}

// KeysContaining returns the sorted ids containing sub.
func (st *StringTable) KeysContaining(sub string) []string {
	var out []string
	for _, k := range st.Keys() {
		if strings.Contains(k, sub) {
			out = append(out, k)
		}
	}
	return out
}
