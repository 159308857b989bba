package pages

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"swiper/internal/domain"
	"swiper/internal/eventbus"
)

// maxPageSize bounds how much of a single file is read into a page
const maxPageSize = 1 << 20

// Loader reads a page collection from disk
type Loader interface {
	Load(ctx context.Context, root string) (domain.PageSet, error)
}

type loader struct {
	bus eventbus.EventBus
}

// NewLoader creates a loader that announces each load on bus. bus may be nil.
func NewLoader(bus eventbus.EventBus) Loader {
	return &loader{bus: bus}
}

// Load reads root. A directory yields one page per regular, non-hidden
// text file in name order; a single file is split into pages on
// separator lines.
func (l *loader) Load(ctx context.Context, root string) (domain.PageSet, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return domain.PageSet{}, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return domain.PageSet{}, fmt.Errorf("failed to stat page source: %w", err)
	}

	var set domain.PageSet
	if info.IsDir() {
		set, err = loadDir(ctx, abs)
	} else {
		set, err = loadFile(abs)
	}
	if err != nil {
		return domain.PageSet{}, err
	}

	log.Printf("Loaded %d pages from %s", len(set.Pages), abs)
	if l.bus != nil {
		l.bus.Publish(eventbus.PagesLoadedEvent{Root: abs, Count: len(set.Pages)})
	}
	return set, nil
}

func loadDir(ctx context.Context, dir string) (domain.PageSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.PageSet{}, fmt.Errorf("failed to read page directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	set := domain.PageSet{Root: dir}
	for _, e := range entries {
		select {
		case <-ctx.Done():
			return domain.PageSet{}, ctx.Err()
		default:
		}

		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		body, err := readText(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		set.Pages = append(set.Pages, domain.Page{
			Title:  e.Name(),
			Body:   body,
			Source: path,
		})
	}
	return set, nil
}

func loadFile(path string) (domain.PageSet, error) {
	body, err := readText(path)
	if err != nil {
		return domain.PageSet{}, err
	}
	set := domain.PageSet{Root: path}
	for i, chunk := range Split(body) {
		set.Pages = append(set.Pages, domain.Page{
			Title:  titleOf(chunk, fmt.Sprintf("%s #%d", filepath.Base(path), i+1)),
			Body:   chunk,
			Source: path,
		})
	}
	return set, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read page: %w", err)
	}
	if len(data) > maxPageSize {
		log.Printf("Truncating %s to %d bytes", path, maxPageSize)
		data = truncate(data, maxPageSize)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("binary file")
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// truncate cuts data to at most n bytes without splitting a UTF-8 sequence
func truncate(data []byte, n int) []byte {
	if len(data) <= n {
		return data
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(data[cut]) {
		cut--
	}
	return data[:cut]
}

// Split breaks text into pages on lines consisting of "---" or a form
// feed. Blank pages are dropped.
func Split(text string) []string {
	var out []string
	var cur []string
	flush := func() {
		chunk := strings.Trim(strings.Join(cur, "\n"), "\n")
		if strings.TrimSpace(chunk) != "" {
			out = append(out, chunk)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(text, "\n") {
		if isSeparator(line) {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

func isSeparator(line string) bool {
	trimmed := strings.Trim(line, " \t\r")
	return trimmed == "---" || trimmed == "\f"
}

// titleOf uses a leading markdown heading as the page title
func titleOf(chunk, fallback string) string {
	first, _, _ := strings.Cut(chunk, "\n")
	if t := strings.TrimSpace(strings.TrimLeft(first, "#")); strings.HasPrefix(first, "#") && t != "" {
		return t
	}
	return fallback
}
