package server

import (
	"encoding/json"
	"fmt"

	"github.com/alexwulf/alloy-configurator/internal/model"
)

// blockPayload is the wire form of a model.Block. Attribute values travel
// as raw expression source, the same representation the model keeps.
type blockPayload struct {
	Name       string             `json:"name"`
	Label      string             `json:"label,omitempty"`
	Attributes []attributePayload `json:"attributes,omitempty"`
	Blocks     []blockPayload     `json:"blocks,omitempty"`
}

type attributePayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (p blockPayload) toBlock() *model.Block {
	b := &model.Block{Name: p.Name, Label: p.Label}
	for _, a := range p.Attributes {
		b.Attributes = append(b.Attributes, model.Attribute{
			Name:  a.Name,
			Value: model.Expr{Source: a.Value},
		})
	}
	for _, nested := range p.Blocks {
		b.Blocks = append(b.Blocks, nested.toBlock())
	}
	return b
}

// replacePayload carries a replace intent: the edited block, the label it
// carried before the edit, and the index of the component record whose span
// is being rewritten.
type replacePayload struct {
	Index    int          `json:"index"`
	OldLabel string       `json:"oldLabel"`
	Block    blockPayload `json:"block"`
}

type markerPayload struct {
	Message     string `json:"message"`
	Severity    string `json:"severity"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
}

func toMarkerPayloads(markers []model.Marker) []markerPayload {
	out := make([]markerPayload, 0, len(markers))
	for _, m := range markers {
		out = append(out, markerPayload{
			Message:     m.Message,
			Severity:    m.Severity.String(),
			StartLine:   m.StartLine,
			StartColumn: m.StartColumn,
			EndLine:     m.EndLine,
			EndColumn:   m.EndColumn,
		})
	}
	return out
}

// componentPayload summarizes one extracted component for lens-style
// affordances: enough to label an inline action and address the span it
// acts on.
type componentPayload struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Label     string `json:"label,omitempty"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
}

type componentsPayload struct {
	Components []componentPayload `json:"components"`
	ElapsedMS  int64              `json:"elapsedMs"`
}

func toComponentPayloads(records []model.ComponentRecord) []componentPayload {
	out := make([]componentPayload, 0, len(records))
	for i, rec := range records {
		p := componentPayload{Index: i}
		if rec.Block != nil {
			p.Name = rec.Block.Name
			p.Label = rec.Block.Label
		}
		if rec.Node != nil {
			p.StartLine = rec.Node.Start().Line
			p.EndLine = rec.Node.End().Line
		}
		out = append(out, p)
	}
	return out
}

// decodePayload rebinds a socket.io argument (generic JSON shape) onto a
// typed payload struct.
func decodePayload(arg any, dst any) error {
	raw, err := json.Marshal(arg)
	if err != nil {
		return fmt.Errorf("server: encoding payload: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("server: decoding payload: %w", err)
	}
	return nil
}
