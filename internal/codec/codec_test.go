package codec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexwulf/alloy-configurator/internal/model"
	"github.com/alexwulf/alloy-configurator/internal/syntax"
)

func parseBlock(t *testing.T, src string) *syntax.Node {
	t.Helper()
	lang := syntax.NewLanguage()
	require.NoError(t, lang.Load(context.Background()))

	tree, err := syntax.NewParser(lang).Parse(src)
	require.NoError(t, err)
	matches := lang.Components().Matches(tree)
	require.NotEmpty(t, matches)
	return matches[0]
}

func TestUnmarshalLabelledBlock(t *testing.T) {
	node := parseBlock(t, `local.file "cfg" {
  filename = "/tmp/config.yaml"
  poll     = "1m"
}
`)
	b := Unmarshal(node)
	assert.Equal(t, "local.file", b.Name)
	assert.Equal(t, "cfg", b.Label)
	assert.Equal(t, "local.file.cfg", b.Ref())

	require.Len(t, b.Attributes, 2)
	filename, ok := b.Attribute("filename")
	require.True(t, ok)
	assert.Equal(t, `"/tmp/config.yaml"`, filename.Source)
}

func TestUnmarshalNestedBlocks(t *testing.T) {
	node := parseBlock(t, `prometheus.remote_write "default" {
  url = "http://localhost:9009"
  queue {
    capacity = 5000
  }
}
`)
	b := Unmarshal(node)
	require.Len(t, b.Blocks, 1)
	assert.Equal(t, "queue", b.Blocks[0].Name)

	capacity, ok := b.Blocks[0].Attribute("capacity")
	require.True(t, ok)
	assert.Equal(t, "5000", capacity.Source)
}

func TestUnmarshalToleratesMalformedNode(t *testing.T) {
	// Missing attribute value and missing closing brace.
	node := parseBlock(t, "a.foo \"x\" {\n  v =\n")
	b := Unmarshal(node)
	assert.Equal(t, "a.foo", b.Name)
	assert.Equal(t, "x", b.Label)

	require.Len(t, b.Attributes, 1)
	assert.Equal(t, "v", b.Attributes[0].Name)
	assert.Equal(t, "", b.Attributes[0].Value.Source)
}

func TestUnmarshalUnterminatedLabel(t *testing.T) {
	node := parseBlock(t, "a.foo \"cfg {\n}\n")
	b := Unmarshal(node)
	assert.Equal(t, "cfg {", b.Label)
}

func TestMarshalRendersCanonicalText(t *testing.T) {
	b := &model.Block{
		Name:  "local.file",
		Label: "cfg",
		Attributes: []model.Attribute{
			{Name: "filename", Value: model.String("/tmp/config.yaml")},
			{Name: "detector", Value: model.Expr{Source: "sys.detect"}},
		},
	}
	want := `local.file "cfg" {
  filename = "/tmp/config.yaml"
  detector = sys.detect
}`
	assert.Equal(t, want, Marshal(b))
}

func TestMarshalQuotesLabelEscapes(t *testing.T) {
	b := &model.Block{Name: "a.foo", Label: `with "quotes"`}
	assert.Equal(t, "a.foo \"with \\\"quotes\\\"\" {\n}", Marshal(b))
}

func TestRoundTrip(t *testing.T) {
	original := &model.Block{
		Name:  "prometheus.remote_write",
		Label: "default",
		Attributes: []model.Attribute{
			{Name: "url", Value: model.String("http://localhost:9009")},
			{Name: "enabled", Value: model.Bool(true)},
		},
		Blocks: []*model.Block{
			{
				Name: "queue",
				Attributes: []model.Attribute{
					{Name: "capacity", Value: model.Number(5000)},
				},
			},
		},
	}

	node := parseBlock(t, Marshal(original)+"\n")
	assert.False(t, node.HasError(), "canonical text must reparse cleanly")
	assert.True(t, original.Equal(Unmarshal(node)),
		"unmarshal(parse(marshal(b))) must equal b")
}
