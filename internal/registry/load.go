package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/alexwulf/alloy-configurator/internal/ctxlog"
	"github.com/alexwulf/alloy-configurator/internal/fsutil"
)

// Manifest file shapes, decoded with gohcl.

type manifestFile struct {
	Components []*componentManifest `hcl:"component,block"`
}

type componentManifest struct {
	Kind        string              `hcl:"kind,label"`
	Description string              `hcl:"description,optional"`
	Arguments   []*argumentManifest `hcl:"argument,block"`
	Exports     []*exportManifest   `hcl:"export,block"`
}

type argumentManifest struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Required    bool           `hcl:"required,optional"`
	Deprecated  string         `hcl:"deprecated,optional"`
	Description string         `hcl:"description,optional"`
}

type exportManifest struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
}

// LoadDir walks a directory for .hcl manifest files and registers every
// component schema they declare. Malformed manifests fail the load; a
// directory without manifests is not an error.
func (r *Registry) LoadDir(ctx context.Context, dir string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading component manifests.", "path", dir)

	paths, err := fsutil.FindFilesByExtension(dir, ".hcl")
	if err != nil {
		return fmt.Errorf("registry: walking manifest directory %s: %w", dir, err)
	}
	if len(paths) == 0 {
		logger.Warn("No component manifests found.", "path", dir)
		return nil
	}

	parser := hclparse.NewParser()
	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return fmt.Errorf("registry: parsing manifest %s: %w", path, diags)
		}
		if err := r.loadFile(path, file); err != nil {
			return err
		}
		logger.Debug("Loaded component manifest.", "file", path)
	}

	logger.Info("Registry loaded.", "kinds", r.Len(), "files", len(paths))
	return nil
}

func (r *Registry) loadFile(path string, file *hcl.File) error {
	var mf manifestFile
	if diags := gohcl.DecodeBody(file.Body, nil, &mf); diags.HasErrors() {
		return fmt.Errorf("registry: decoding manifest %s: %w", path, diags)
	}

	for _, cm := range mf.Components {
		schema := &Schema{Kind: cm.Kind, Description: cm.Description}
		for _, am := range cm.Arguments {
			ty, err := constraint(am.Type)
			if err != nil {
				return fmt.Errorf("registry: argument %q of %q in %s: %w", am.Name, cm.Kind, path, err)
			}
			schema.Arguments = append(schema.Arguments, &ArgumentSpec{
				Name:        am.Name,
				Type:        ty,
				Required:    am.Required,
				Deprecated:  am.Deprecated,
				Description: am.Description,
			})
		}
		for _, em := range cm.Exports {
			ty, err := constraint(em.Type)
			if err != nil {
				return fmt.Errorf("registry: export %q of %q in %s: %w", em.Name, cm.Kind, path, err)
			}
			schema.Exports = append(schema.Exports, &ExportSpec{
				Name:        em.Name,
				Type:        ty,
				Description: em.Description,
			})
		}
		if err := r.Register(schema); err != nil {
			return fmt.Errorf("%w (in %s)", err, path)
		}
	}
	return nil
}

// constraint converts a manifest type expression (string, list(number),
// object({...})) into a cty type.
func constraint(expr hcl.Expression) (cty.Type, error) {
	ty, diags := typeexpr.TypeConstraint(expr)
	if diags.HasErrors() {
		return cty.NilType, fmt.Errorf("invalid type expression: %w", diags)
	}
	return ty, nil
}
