package service

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jask/jaskgallery/internal/database/repository"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported import format")

// IngestService appends images to the local gallery.
type IngestService struct {
	Images *repository.ImageRepo
}

type IngestResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

type manifestEntry struct {
	URL   string `yaml:"url"`
	Title string `yaml:"title"`
}

type manifest struct {
	Images []manifestEntry `yaml:"images"`
}

// ImportFile picks the importer from the file extension.
func (s *IngestService) ImportFile(ctx context.Context, path string) (IngestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return IngestResult{}, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return s.ImportCSV(ctx, f)
	case ".yaml", ".yml":
		return s.ImportYAML(ctx, f)
	default:
		return IngestResult{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
}

// CSV columns: image_url, title. A header row naming image_url or url is skipped.
// Rows with an empty url are kept; they show as "no image".
func (s *IngestService) ImportCSV(ctx context.Context, r io.Reader) (IngestResult, error) {
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	order, err := s.Images.NextSortOrder(ctx)
	if err != nil {
		return res, fmt.Errorf("next sort order: %w", err)
	}
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if line == 1 && isHeader(rec) {
			continue
		}
		entry := manifestEntry{URL: rec[0]}
		if len(rec) > 1 {
			entry.Title = strings.Join(rec[1:], ",")
		}
		if s.insert(ctx, entry, order, &res, line) {
			order++
		}
	}
	return res, nil
}

// ImportYAML reads a manifest of the form
//
//	images:
//	  - url: https://example.com/a.png
//	    title: A
func (s *IngestService) ImportYAML(ctx context.Context, r io.Reader) (IngestResult, error) {
	res := IngestResult{}
	var m manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return res, fmt.Errorf("decode manifest: %w", err)
	}
	order, err := s.Images.NextSortOrder(ctx)
	if err != nil {
		return res, fmt.Errorf("next sort order: %w", err)
	}
	for i, entry := range m.Images {
		if s.insert(ctx, entry, order, &res, i+1) {
			order++
		}
	}
	return res, nil
}

func (s *IngestService) insert(ctx context.Context, e manifestEntry, order int, res *IngestResult, line int) bool {
	url := nullableStr(e.URL)
	title := nullableStr(e.Title)
	if url == nil && title == nil {
		res.Errors = append(res.Errors, fmt.Errorf("line %d: empty entry", line))
		return false
	}
	img := repository.Image{
		ID:         uuid.NewString(),
		Title:      title,
		ImageURL:   url,
		SortOrder:  order,
		SourceHash: hashSource(strings.TrimSpace(e.URL), strings.TrimSpace(e.Title)),
	}
	if err := s.Images.Insert(ctx, img); err != nil {
		// skip duplicates on unique constraint
		if strings.Contains(err.Error(), "UNIQUE") {
			res.Skipped++
			return false
		}
		res.Errors = append(res.Errors, fmt.Errorf("line %d insert: %w", line, err))
		return false
	}
	res.Imported++
	return true
}

func isHeader(rec []string) bool {
	switch strings.ToLower(strings.TrimSpace(rec[0])) {
	case "image_url", "url", "imageurl":
		return true
	}
	return false
}

func nullableStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func hashSource(parts ...string) *string {
	joined := strings.Join(parts, "|")
	sum := sha256.Sum256([]byte(joined))
	h := fmt.Sprintf("%x", sum[:])
	return &h
}
