// Package dataset reads the category sequence the controller plays through.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"timeplay/internal/config"
	"timeplay/internal/domain"
)

// Supported formats
const (
	FormatTOML = "toml"
	FormatCSV  = "csv"
)

// ErrNoPath is returned when no data file has been configured
var ErrNoPath = errors.New("no data file configured")

// Options controls how a data file becomes a sequence
type Options struct {
	Path       string
	Format     string
	Columns    []string // CSV category columns, first column when empty
	SortColumn string
	IDColumn   string
	Display    string // overrides the display label from the file
	Sort       bool
	Ascending  bool
}

// OptionsFromConfig builds loader options from the [data] and [sort] sections
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Path:       cfg.Data.Path,
		Format:     cfg.Data.Format,
		Columns:    append([]string(nil), cfg.Data.Columns...),
		SortColumn: cfg.Data.SortColumn,
		IDColumn:   cfg.Data.IDColumn,
		Display:    cfg.Data.Display,
		Sort:       cfg.Sort.Enabled,
		Ascending:  cfg.Sort.Ascending,
	}
}

// FormatFor returns the explicit format or infers it from the file extension
func (o Options) FormatFor() string {
	if o.Format != "" {
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(o.Path)) {
	case ".csv", ".tsv":
		return FormatCSV
	default:
		return FormatTOML
	}
}

// Load reads and parses the configured data file
func Load(opts Options) (domain.Sequence, error) {
	if opts.Path == "" {
		return domain.Sequence{}, ErrNoPath
	}

	f, err := os.Open(opts.Path)
	if err != nil {
		return domain.Sequence{}, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	seq, err := Parse(f, opts)
	if err != nil {
		return domain.Sequence{}, fmt.Errorf("failed to load %s: %w", opts.Path, err)
	}
	seq.Source = opts.Path
	return seq, nil
}

// Parse decodes a sequence from r in the format selected by opts
func Parse(r io.Reader, opts Options) (domain.Sequence, error) {
	var (
		seq domain.Sequence
		err error
	)
	switch opts.FormatFor() {
	case FormatCSV:
		seq, err = parseCSV(r, opts, strings.ToLower(filepath.Ext(opts.Path)) == ".tsv")
	case FormatTOML:
		seq, err = parseTOML(r)
	default:
		return domain.Sequence{}, fmt.Errorf("unsupported data format %q", opts.Format)
	}
	if err != nil {
		return domain.Sequence{}, err
	}

	dedupeIDs(seq.Items)

	if opts.Display != "" {
		seq.Display = opts.Display
	}
	if opts.Sort {
		SortItems(seq.Items, opts.Ascending)
	}
	return seq, nil
}

type tomlFile struct {
	Display string     `toml:"display"`
	Items   []tomlItem `toml:"items"`
}

type tomlItem struct {
	Label string `toml:"label"`
	Sort  any    `toml:"sort"`
	ID    string `toml:"id"`
}

func parseTOML(r io.Reader) (domain.Sequence, error) {
	var file tomlFile
	if err := toml.NewDecoder(r).Decode(&file); err != nil {
		return domain.Sequence{}, fmt.Errorf("failed to parse toml data: %w", err)
	}

	seq := domain.Sequence{Display: file.Display}
	for i, it := range file.Items {
		id := it.ID
		if id == "" {
			id = rowID(i)
		}
		seq.Items = append(seq.Items, domain.Item{
			Label:   it.Label,
			SortKey: normalizeKey(it.Sort),
			ID:      domain.ItemID(id),
		})
	}
	return seq, nil
}

func parseCSV(r io.Reader, opts Options, tabs bool) (domain.Sequence, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	if tabs {
		reader.Comma = '\t'
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.Sequence{}, nil
	}
	if err != nil {
		return domain.Sequence{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	lookup := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("csv column %q not found", name)
		}
		return i, nil
	}

	columns := opts.Columns
	if len(columns) == 0 && len(header) > 0 {
		columns = []string{strings.TrimSpace(header[0])}
	}
	cols := make([]int, 0, len(columns))
	for _, name := range columns {
		i, err := lookup(name)
		if err != nil {
			return domain.Sequence{}, err
		}
		cols = append(cols, i)
	}

	sortCol, idCol := -1, -1
	if opts.SortColumn != "" {
		if sortCol, err = lookup(opts.SortColumn); err != nil {
			return domain.Sequence{}, err
		}
	}
	if opts.IDColumn != "" {
		if idCol, err = lookup(opts.IDColumn); err != nil {
			return domain.Sequence{}, err
		}
	}

	seq := domain.Sequence{Display: strings.Join(columns, ", ")}
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Sequence{}, fmt.Errorf("failed to read csv row %d: %w", row+1, err)
		}

		parts := make([]string, 0, len(cols))
		for _, c := range cols {
			parts = append(parts, cell(record, c))
		}
		item := domain.Item{
			Label: strings.Join(parts, " "),
			ID:    domain.ItemID(rowID(row)),
		}
		if sortCol >= 0 {
			item.SortKey = ParseSortKey(cell(record, sortCol))
		}
		if idCol >= 0 {
			if id := cell(record, idCol); id != "" {
				item.ID = domain.ItemID(id)
			}
		}
		seq.Items = append(seq.Items, item)
	}
	return seq, nil
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func rowID(i int) string {
	return "row:" + strconv.Itoa(i)
}

// dedupeIDs gives every item a distinct id. The selection is keyed by id, so
// a repeated id would highlight every row that shares it. Repeats fall back
// to their row index.
func dedupeIDs(items []domain.Item) {
	seen := make(map[domain.ItemID]bool, len(items))
	for i := range items {
		id := items[i].ID
		if seen[id] {
			fallback := domain.ItemID(rowID(i))
			for n := 1; seen[fallback]; n++ {
				fallback = domain.ItemID(rowID(i) + "." + strconv.Itoa(n))
			}
			log.Printf("dataset: duplicate id %q at row %d, using %q", id, i, fallback)
			items[i].ID = fallback
			id = fallback
		}
		seen[id] = true
	}
}
