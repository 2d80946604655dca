package pricing

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
)

// Match is a field found by Locate.
type Match struct {
	Key   string
	Value *tree.Value
	Path  []string
}

// PathString joins the path with dots, e.g. "a.b.Preco_ens".
func (m Match) PathString() string {
	return strings.Join(m.Path, ".")
}

// NormalizeName lower-cases name and drops everything that is not a letter or digit.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func namesMatch(key, candidate string) bool {
	if key == "" || candidate == "" {
		return false
	}
	return strings.Contains(key, candidate) || strings.Contains(candidate, key)
}

// Locate finds the first field whose name tolerantly matches one of the
// candidates: normalized names are equal or either contains the other. All
// keys of a level are checked before descending, so a shallow match always
// beats a deeper one. Within a level exact names win over substring matches.
func Locate(record *tree.Value, candidates []string) (Match, bool) {
	return LocateFunc(record, candidates, nil)
}

// LocateFunc is Locate with an acceptance check on the matched value. A name
// match whose value is rejected does not end the search. A nil accept takes
// every match.
func LocateFunc(record *tree.Value, candidates []string, accept func(*tree.Value) bool) (Match, bool) {
	normalized := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if n := NormalizeName(c); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return Match{}, false
	}

	l := locator{
		candidates: normalized,
		accept:     accept,
		visited:    make(map[*tree.Value]bool),
	}
	return l.search(record, nil)
}

type locator struct {
	candidates []string
	accept     func(*tree.Value) bool
	visited    map[*tree.Value]bool
}

func (l *locator) search(v *tree.Value, path []string) (Match, bool) {
	if !v.IsContainer() || l.visited[v] {
		return Match{}, false
	}
	l.visited[v] = true

	fields := v.Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = NormalizeName(f.Key)
	}

	// exact names first, so "preco" does not shadow "Preco_med_prod"
	for _, exact := range []bool{true, false} {
		for _, candidate := range l.candidates {
			for i, f := range fields {
				if exact && keys[i] != candidate || !exact && !namesMatch(keys[i], candidate) {
					continue
				}
				if l.accept != nil && !l.accept(f.Value) {
					continue
				}
				return Match{Key: f.Key, Value: f.Value, Path: appendPath(path, f.Key)}, true
			}
		}
	}

	for _, f := range fields {
		if m, ok := l.search(f.Value, appendPath(path, f.Key)); ok {
			return m, true
		}
	}
	for i, item := range v.Items() {
		if m, ok := l.search(item, appendPath(path, strconv.Itoa(i))); ok {
			return m, true
		}
	}
	return Match{}, false
}

func appendPath(path []string, segment string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, segment)
}
