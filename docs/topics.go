// Package docs embeds the user documentation shown by 'holdem topic'.
//
// readme.md is the index: every other page is a topic listed there as a
// "* name: summary" item, and only listed topics can be read.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Index is the name of the page listing the topics.
const Index = "readme"

var indexItem = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Topic is a page listed in the index.
type Topic struct {
	Name    string
	Summary string
}

// Topics returns the topics listed in the index, in index order.
func Topics() ([]Topic, error) {
	data, err := pages.ReadFile(Index + ".md")
	if err != nil {
		return nil, fmt.Errorf("cannot read the documentation index: %w", err)
	}
	var topics []Topic
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if m := indexItem.FindStringSubmatch(sc.Text()); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Summary: m[2]})
		}
	}
	return topics, sc.Err()
}

// Names returns the names of the listed topics.
func Names() ([]string, error) {
	topics, err := Topics()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	return names, nil
}

// Read returns the pages of the given topics, one after the other. "*"
// stands for every listed topic, and the index itself is named Index.
func Read(names ...string) (string, error) {
	listed, err := Names()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			expanded = listed
		}
		for _, n := range expanded {
			if n != Index && !slices.Contains(listed, n) {
				return "", fmt.Errorf("topic %q not found, see 'holdem topic'", n)
			}
			data, err := pages.ReadFile(n + ".md")
			if err != nil {
				return "", fmt.Errorf("topic %q is listed but has no page: %w", n, err)
			}
			b.Write(data)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// Unlisted returns the embedded pages that the index does not list, and
// that Read therefore refuses.
func Unlisted() ([]string, error) {
	listed, err := Names()
	if err != nil {
		return nil, err
	}
	files, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	var unlisted []string
	for _, f := range files {
		name := strings.TrimSuffix(f, ".md")
		if name != Index && !slices.Contains(listed, name) {
			unlisted = append(unlisted, name)
		}
	}
	return unlisted, nil
}
