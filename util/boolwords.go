package util

import (
	"fmt"
	"strings"
	"sync"
)

// BoolWords renders boolean values as words of some language.
type BoolWords struct {
	False string `yaml:"false" mapstructure:"false"`
	True  string `yaml:"true" mapstructure:"true"`
}

var (
	// English renders true as "Yes" and false as "No".
	English = BoolWords{False: "No", True: "Yes"}
	// Spanish renders true as "Sí" and false as "No".
	Spanish = BoolWords{False: "No", True: "Sí"}
)

// NewBoolWords builds a BoolWords from options, where options[0] is the
// word for false and options[1] the word for true. Extra entries are ignored.
func NewBoolWords(options []string) (BoolWords, error) {
	if len(options) < 2 {
		return BoolWords{}, fmt.Errorf("bool words need at least two options (got: %d)", len(options))
	}
	return BoolWords{False: options[0], True: options[1]}, nil
}

// Convert returns the word for v.
func (w BoolWords) Convert(v bool) string {
	if v {
		return w.True
	}
	return w.False
}

// Upper returns the word for v in upper case.
func (w BoolWords) Upper(v bool) string {
	return strings.ToUpper(w.Convert(v))
}

// Lower returns the word for v in lower case.
func (w BoolWords) Lower(v bool) string {
	return strings.ToLower(w.Convert(v))
}

// Options returns the pair as [false, true].
func (w BoolWords) Options() []string {
	return []string{w.False, w.True}
}

// boolWordsRegistry maps language tags to word pairs.
var boolWordsRegistry = struct {
	mu    sync.RWMutex
	words map[string]BoolWords
}{
	words: map[string]BoolWords{
		"en": English,
		"es": Spanish,
	},
}

// RegisterBoolWords stores w under lang, replacing any previous entry.
// Language tags are matched case-insensitively.
func RegisterBoolWords(lang string, w BoolWords) {
	boolWordsRegistry.mu.Lock()
	defer boolWordsRegistry.mu.Unlock()
	boolWordsRegistry.words[strings.ToLower(lang)] = w
}

// LookupBoolWords returns the words registered for lang.
func LookupBoolWords(lang string) (BoolWords, bool) {
	boolWordsRegistry.mu.RLock()
	defer boolWordsRegistry.mu.RUnlock()
	w, ok := boolWordsRegistry.words[strings.ToLower(lang)]
	return w, ok
}
