package cart

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Stray lines are dropped on load so a damaged file degrades into a missing
// section instead of a parse failure. Values are taken as written: a trailing
// backslash does not join the next line, '#' and ';' are not comments, and
// surrounding quotes are kept.
var loadOptions = ini.LoadOptions{
	SkipUnrecognizableLines: true,
	IgnoreContinuation:      true,
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// plainName reports whether the INI writer emits name verbatim and the reader
// returns it unchanged. The writer wraps values with surrounding whitespace,
// newlines or backticks in its own quotes, and the reader treats a leading
// `"""` as a multi-line value.
func plainName(name string) bool {
	if strings.ContainsAny(name, "\r\n`") || strings.TrimSpace(name) != name {
		return false
	}
	if strings.HasPrefix(name, `"""`) {
		return false
	}
	return !quotedName(name)
}

func quotedName(v string) bool {
	return len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"'
}

// encodeName returns the stored form of name. Plain names are stored as is so
// other games read them unchanged; anything else becomes a double-quoted
// string with backslash escapes.
func encodeName(name string) string {
	if plainName(name) {
		return name
	}
	return strings.ReplaceAll(strconv.Quote(name), "`", `\x60`)
}

// decodeName reverses encodeName. A quoted value that does not unquote was
// written by something else and is returned untouched.
func decodeName(stored string) string {
	if !quotedName(stored) {
		return stored
	}
	name, err := strconv.Unquote(stored)
	if err != nil {
		return stored
	}
	return name
}

func readDocument(path string) (*ini.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// defaultDocument builds the default record as an INI document.
func defaultDocument() *ini.File {
	doc := ini.Empty(loadOptions)
	DefaultRecord().apply(doc.Section(SectionMain))
	return doc
}

// writeDocumentAtomic replaces path with doc through a temp file and rename,
// so readers never observe a partially written cart.
func writeDocumentAtomic(path string, doc *ini.File, mode os.FileMode) error {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, ".tmp-*.ini")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if _, err := doc.WriteTo(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	if err := os.Chmod(file.Name(), mode); err != nil {
		return err
	}
	return os.Rename(file.Name(), path)
}
