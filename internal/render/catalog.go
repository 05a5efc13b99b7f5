// SPDX-License-Identifier: MIT

package render

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var defaultCatalog = mustLoadCatalog(embeddedLocales)

// loadCatalog builds a message catalog from locales/<tag>.yaml files.
// Every locale must define exactly the keys of the base locale.
func loadCatalog(fsys fs.FS) (*catalog.Builder, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	files := make(map[string]catalogFile, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		want := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if f.Locale != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, f.Locale, want)
		}
		files[f.Locale] = f
	}

	base, ok := files[baseLocale.String()]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", baseLocale)
	}

	b := catalog.NewBuilder(catalog.Fallback(baseLocale))
	for locale, f := range files {
		for key := range base.Messages {
			if _, ok := f.Messages[key]; !ok {
				return nil, fmt.Errorf("catalog %s: missing key %q", locale, key)
			}
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale: %w", locale, err)
		}
		for key, msg := range f.Messages {
			if _, ok := base.Messages[key]; !ok {
				return nil, fmt.Errorf("catalog %s: unknown key %q", locale, key)
			}
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", locale, key, err)
			}
		}
	}
	return b, nil
}

func mustLoadCatalog(fsys fs.FS) *catalog.Builder {
	b, err := loadCatalog(fsys)
	if err != nil {
		panic(err)
	}
	return b
}
