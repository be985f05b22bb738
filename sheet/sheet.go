package sheet

import (
	"bytes"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssb/css"
)

// Load parses recipe data. Unknown fields are rejected so typos in recipe
// files fail loudly instead of silently dropping rules.
func Load(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode recipe: %w", err)
	}
	return &doc, nil
}

// Assemble builds every rule of the recipe into a stylesheet. All rule
// failures are collected and returned together with the rules that did
// assemble, so one broken selector does not hide the rest of the recipe.
func (doc *Document) Assemble(log *zap.Logger) (*css.Stylesheet, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		sheet css.Stylesheet
		err   error
	)

	for _, url := range doc.Imports {
		sheet.AddImport(url)
	}

	for i := range doc.Rules {
		rule, rerr := doc.Rules[i].Build()
		if rerr != nil {
			err = multierr.Append(err, fmt.Errorf("rule %d: %w", i+1, rerr))
			continue
		}
		log.Debug("Assembled rule", zap.String("selector", rule.Selector), zap.Int("declarations", len(rule.Properties)))
		sheet.AddRule(rule)
	}

	log.Debug("Recipe assembled",
		zap.Int("imports", len(doc.Imports)), zap.Int("rules", len(sheet.Rules())), zap.Int("failed", len(multierr.Errors(err))))

	return &sheet, err
}
