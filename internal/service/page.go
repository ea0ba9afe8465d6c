package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stridehq/stride/internal/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrPageNotFound = errors.New("page not found")

// Page is a rendered marketing or legal page. These carry no invariants;
// content lives as markdown files under the content directory.
type Page struct {
	Title   string
	Slug    string
	Content string
}

type PageService struct {
	contentDir string
	parser     *markdown.Parser
}

func NewPageService(contentDir string) *PageService {
	return &PageService{
		contentDir: filepath.Join(contentDir, "pages"),
		parser:     markdown.NewParser(),
	}
}

func (s *PageService) Page(slug string) (*Page, error) {
	if !validSlug(slug) {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}

	filePath := filepath.Join(s.contentDir, slug+".md")
	source, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
		}
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}

	return &Page{
		Title:   title,
		Slug:    slug,
		Content: string(html),
	}, nil
}

// validSlug keeps page lookups inside the content directory.
func validSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
