package phonetics

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

//go:embed data/starter.dict
var starterDict string

// Entry is one pronunciation variant of a word.
type Entry struct {
	Word   string
	Phones string
}

// Dictionary is an in-memory pronunciation dictionary. It is built once and
// read-only afterwards, so it can be shared between goroutines.
type Dictionary struct {
	entries []Entry
	phones  map[string][]string
	rhymes  map[string][]string // rhyming part -> headwords
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		phones: make(map[string][]string),
		rhymes: make(map[string][]string),
	}
}

// Add records a pronunciation variant for word.
func (d *Dictionary) Add(word, phones string) {
	word = NormalizeWord(word)
	phones = strings.Join(strings.Fields(phones), " ")
	if word == "" || phones == "" {
		return
	}
	d.entries = append(d.entries, Entry{Word: word, Phones: phones})
	d.phones[word] = append(d.phones[word], phones)
	part := RhymingPart(phones)
	d.rhymes[part] = append(d.rhymes[part], word)
}

// Parse reads CMU-format lines: a headword followed by its phones. Blank
// lines, ";;;" and "#" comments are skipped, as are trailing "#" comments.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected a word followed by phones", lineNum)
		}
		word := NormalizeWord(fields[0])
		if word == "" {
			return nil, fmt.Errorf("line %d: empty headword", lineNum)
		}
		entries = append(entries, Entry{
			Word:   word,
			Phones: strings.ToUpper(strings.Join(fields[1:], " ")),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Load parses a CMU-format dictionary.
func Load(r io.Reader) (*Dictionary, error) {
	entries, err := Parse(r)
	if err != nil {
		return nil, err
	}
	d := NewDictionary()
	for _, e := range entries {
		d.Add(e.Word, e.Phones)
	}
	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Starter returns the small dictionary embedded in the binary. It covers
// common one- and two-syllable words so rhyming works without a full
// CMU dictionary installed.
func Starter() *Dictionary {
	d, err := Load(strings.NewReader(starterDict))
	if err != nil {
		panic(fmt.Sprintf("phonetics: embedded starter dictionary: %v", err))
	}
	return d
}

// PhonesForWord implements Source.
func (d *Dictionary) PhonesForWord(word string) ([]string, error) {
	return d.phones[NormalizeWord(word)], nil
}

// Rhymes implements Source.
func (d *Dictionary) Rhymes(word string) ([]string, error) {
	word = NormalizeWord(word)
	seen := make(map[string]bool)
	var out []string
	for _, phones := range d.phones[word] {
		for _, w := range d.rhymes[RhymingPart(phones)] {
			if w == word || seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Entries returns all pronunciation variants in insertion order.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len is the number of distinct headwords.
func (d *Dictionary) Len() int { return len(d.phones) }

var _ Source = (*Dictionary)(nil)
