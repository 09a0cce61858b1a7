// Package earn serves the how-to-earn content catalog. Methods are authored
// as markdown files with YAML front matter, embedded into the binary, and
// rendered to sanitized HTML once at load time.
package earn

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// Method is one way members can earn points.
type Method struct {
	Slug   string
	Title  string
	Reward string
	Icon   string
	Order  int
	// Body is the rendered, sanitized HTML of the markdown body.
	Body template.HTML
	// Items are optional labelled reward lines shown under the body.
	Items []RewardItem
}

// RewardItem is a labelled reward line, e.g. "Verification: 200 pitchforks".
type RewardItem struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Tip is a short advice card shown below the methods.
type Tip struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Catalog is the parsed earn content, immutable after Load.
type Catalog struct {
	Methods []Method
	Tips    []Tip
}

type frontMatter struct {
	Title  string       `yaml:"title"`
	Reward string       `yaml:"reward"`
	Icon   string       `yaml:"icon"`
	Order  int          `yaml:"order"`
	Items  []RewardItem `yaml:"items"`
	Tips   []Tip        `yaml:"tips"`
}

// Raw HTML in the markdown is escaped, keeping the rendered body inert
// before it even reaches the sanitizer.
var renderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var policy = bluemonday.UGCPolicy()

// Load parses every markdown file under dir in fsys into a Catalog. Methods
// sort by their front-matter order, then slug.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("earn: read content dir: %w", err)
	}

	catalog := &Catalog{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("earn: read %s: %w", entry.Name(), err)
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		fm, body, err := parse(raw)
		if err != nil {
			return nil, fmt.Errorf("earn: parse %s: %w", entry.Name(), err)
		}

		if slug == "tips" {
			catalog.Tips = fm.Tips
			continue
		}

		var buf bytes.Buffer
		if err := renderer.Convert([]byte(body), &buf); err != nil {
			return nil, fmt.Errorf("earn: render %s: %w", entry.Name(), err)
		}
		catalog.Methods = append(catalog.Methods, Method{
			Slug:   slug,
			Title:  fm.Title,
			Reward: fm.Reward,
			Icon:   fm.Icon,
			Order:  fm.Order,
			Body:   template.HTML(policy.SanitizeBytes(buf.Bytes())),
			Items:  fm.Items,
		})
	}

	sort.Slice(catalog.Methods, func(i, j int) bool {
		if catalog.Methods[i].Order != catalog.Methods[j].Order {
			return catalog.Methods[i].Order < catalog.Methods[j].Order
		}
		return catalog.Methods[i].Slug < catalog.Methods[j].Slug
	})
	return catalog, nil
}

func parse(raw []byte) (frontMatter, string, error) {
	var fm frontMatter
	fmText, body := splitFrontMatter(string(raw))
	if fmText != "" {
		if err := yaml.Unmarshal([]byte(fmText), &fm); err != nil {
			return fm, "", fmt.Errorf("front matter: %w", err)
		}
	}
	return fm, body, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimPrefix(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}
