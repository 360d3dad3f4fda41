package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprConstructors(t *testing.T) {
	assert.Equal(t, `"hello"`, String("hello").Source)
	assert.Equal(t, "5000", Number(5000).Source)
	assert.Equal(t, "0.25", Number(0.25).Source)
	assert.Equal(t, "true", Bool(true).Source)
}

func TestExprEqualIgnoresEdgeWhitespace(t *testing.T) {
	assert.True(t, Expr{Source: " b.bar.y "}.Equal(Expr{Source: "b.bar.y"}))
	assert.False(t, Expr{Source: "b.bar.y"}.Equal(Expr{Source: "b.baz.y"}))
}

func TestBlockRef(t *testing.T) {
	assert.Equal(t, "prometheus.remote_write.default",
		(&Block{Name: "prometheus.remote_write", Label: "default"}).Ref())
	assert.Equal(t, "a.foo", (&Block{Name: "a.foo"}).Ref())
}

func TestBlockEqual(t *testing.T) {
	mk := func() *Block {
		return &Block{
			Name:  "local.file",
			Label: "cfg",
			Attributes: []Attribute{
				{Name: "filename", Value: String("/tmp/x")},
			},
			Blocks: []*Block{
				{Name: "queue", Attributes: []Attribute{{Name: "capacity", Value: Number(10)}}},
			},
		}
	}

	assert.True(t, mk().Equal(mk()))

	other := mk()
	other.Label = "cfg2"
	assert.False(t, mk().Equal(other))

	other = mk()
	other.Attributes[0].Value = String("/tmp/y")
	assert.False(t, mk().Equal(other))

	other = mk()
	other.Blocks = nil
	assert.False(t, mk().Equal(other))

	assert.False(t, mk().Equal(nil))
	var a, b *Block
	assert.True(t, a.Equal(b))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "hint", SeverityHint.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
