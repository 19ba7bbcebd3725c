package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeplay/internal/config"
	"timeplay/internal/domain"
)

func itemLabels(seq domain.Sequence) []string {
	var out []string
	for _, it := range seq.Items {
		out = append(out, it.Label)
	}
	return out
}

func TestParseTOML(t *testing.T) {
	src := `
display = "Quarter"

[[items]]
label = "Q2"
sort = 2
id = "q2"

[[items]]
label = "Q1"
sort = 1

[[items]]
label = "Launch"
sort = 2024-03-01
`
	seq, err := Parse(strings.NewReader(src), Options{Format: FormatTOML})
	require.NoError(t, err)

	assert.Equal(t, "Quarter", seq.Display)
	assert.Equal(t, []string{"Q2", "Q1", "Launch"}, itemLabels(seq))
	assert.Equal(t, domain.ItemID("q2"), seq.Items[0].ID)
	assert.Equal(t, domain.ItemID("row:1"), seq.Items[1].ID)
	assert.Equal(t, float64(1), seq.Items[1].SortKey)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), seq.Items[2].SortKey)
}

func TestParseTOMLInvalid(t *testing.T) {
	_, err := Parse(strings.NewReader("[[items]\nlabel="), Options{Format: FormatTOML})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse toml data")
}

func TestParseCSVDefaultsToFirstColumn(t *testing.T) {
	src := "region,sales\nNorth,10\nSouth,20\n"

	seq, err := Parse(strings.NewReader(src), Options{Path: "sales.csv"})
	require.NoError(t, err)

	assert.Equal(t, "region", seq.Display)
	assert.Equal(t, []string{"North", "South"}, itemLabels(seq))
	assert.Equal(t, domain.ItemID("row:0"), seq.Items[0].ID)
	assert.Nil(t, seq.Items[0].SortKey)
}

func TestParseCSVColumnsSortAndID(t *testing.T) {
	src := strings.Join([]string{
		"year,quarter,order,key",
		"2024,Q3,3,c",
		"2024,Q1,1,a",
		"2024,Q2,2,",
	}, "\n")

	seq, err := Parse(strings.NewReader(src), Options{
		Format:     FormatCSV,
		Columns:    []string{"year", "quarter"},
		SortColumn: "order",
		IDColumn:   "key",
		Sort:       true,
		Ascending:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "year, quarter", seq.Display)
	assert.Equal(t, []string{"2024 Q1", "2024 Q2", "2024 Q3"}, itemLabels(seq))
	assert.Equal(t, domain.ItemID("a"), seq.Items[0].ID)
	assert.Equal(t, domain.ItemID("row:2"), seq.Items[1].ID, "blank id cell falls back to row index")
}

func TestDuplicateIDsFallBackToRowIndex(t *testing.T) {
	src := "name,key\nAlpha,x\nBeta,x\nGamma,y\nDelta,x\n"

	seq, err := Parse(strings.NewReader(src), Options{Format: FormatCSV, IDColumn: "key"})
	require.NoError(t, err)

	ids := domain.IDs(seq.Items)
	assert.Equal(t, []domain.ItemID{"x", "row:1", "y", "row:3"}, ids)
}

func TestDuplicateTOMLIDsStayDistinct(t *testing.T) {
	src := `
[[items]]
label = "one"
id = "row:1"

[[items]]
label = "two"

[[items]]
label = "three"
id = "row:1"
`
	seq, err := Parse(strings.NewReader(src), Options{Format: FormatTOML})
	require.NoError(t, err)

	seen := map[domain.ItemID]bool{}
	for _, id := range domain.IDs(seq.Items) {
		assert.False(t, seen[id], "id %q repeated", id)
		seen[id] = true
	}
	assert.Equal(t, domain.ItemID("row:1"), seq.Items[0].ID)
}

func TestParseCSVUnknownColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("a,b\n1,2\n"), Options{Format: FormatCSV, Columns: []string{"c"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"c"`)
}

func TestParseCSVEmpty(t *testing.T) {
	seq, err := Parse(strings.NewReader(""), Options{Format: FormatCSV})
	require.NoError(t, err)
	assert.Empty(t, seq.Items)
}

func TestDisplayOverride(t *testing.T) {
	seq, err := Parse(strings.NewReader("name\nx\n"), Options{Format: FormatCSV, Display: "Things"})
	require.NoError(t, err)
	assert.Equal(t, "Things", seq.Display)
}

func TestLoadSetsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "months.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[items]]\nlabel = \"Jan\"\n"), 0644))

	seq, err := Load(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, seq.Source)
	assert.Equal(t, []string{"Jan"}, itemLabels(seq))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(Options{})
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = Load(Options{Path: filepath.Join(t.TempDir(), "gone.csv")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatCSV, Options{Path: "a.CSV"}.FormatFor())
	assert.Equal(t, FormatTOML, Options{Path: "a.toml"}.FormatFor())
	assert.Equal(t, FormatCSV, Options{Path: "a.toml", Format: FormatCSV}.FormatFor())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Data.Path = "q.csv"
	cfg.Data.Columns = []string{"q"}
	cfg.Sort.Enabled = true

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, "q.csv", opts.Path)
	assert.Equal(t, []string{"q"}, opts.Columns)
	assert.True(t, opts.Sort)
	assert.True(t, opts.Ascending)
}
