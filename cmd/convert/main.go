package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/catalogmapper/catalog-mapper/constants"
	"github.com/catalogmapper/catalog-mapper/internal/entity"
	"github.com/catalogmapper/catalog-mapper/internal/generator"
	"github.com/catalogmapper/catalog-mapper/internal/suggest"
	"github.com/catalogmapper/catalog-mapper/internal/tabular"
)

// convert runs the whole pipeline offline against two local files: parse a
// catalog and a marketplace template, match columns with the rule-based
// engine and project the catalog into the template's shape. Useful for
// trying a mapping without a database or server.
func main() {
	var (
		inPath       = flag.String("in", "", "catalog file (.csv/.xlsx)")
		templatePath = flag.String("template", "", "marketplace template file (.csv/.xlsx)")
		outPath      = flag.String("out", "", "output file; format follows its extension")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *inPath == "" || *templatePath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	format := constants.NormalizeExt(filepath.Ext(*outPath))
	if !constants.IsOutputFormat(format) {
		logger.Error("output extension must be .csv or .xlsx", "out", *outPath)
		os.Exit(2)
	}

	catalog, err := parseFile(*inPath)
	if err != nil {
		logger.Error("parsing catalog failed", "path", *inPath, "error", err)
		os.Exit(1)
	}
	template, err := parseFile(*templatePath)
	if err != nil {
		logger.Error("parsing template failed", "path", *templatePath, "error", err)
		os.Exit(1)
	}

	fields := make([]entity.MarketplaceField, len(template.Columns))
	for i, col := range template.Columns {
		order := i
		fields[i] = entity.MarketplaceField{
			FieldName:  col.Name,
			FieldOrder: &order,
		}
	}

	engine := suggest.NewService(suggest.NewRuleMatcher(), logger)
	suggestions := engine.SuggestMappings(context.Background(), suggest.Request{
		Columns:         catalog.Columns,
		Fields:          fields,
		MarketplaceName: filepath.Base(*templatePath),
	})

	var mappings []entity.FieldMapping
	for _, s := range suggestions {
		if s.FieldName == nil {
			logger.Warn("column unmatched", "column", s.UserColumn)
			continue
		}
		logger.Info("column matched",
			"column", s.UserColumn,
			"field", *s.FieldName,
			"confidence", fmt.Sprintf("%.2f", s.Confidence))
		mappings = append(mappings, entity.FieldMapping{
			UserColumn: s.UserColumn,
			FieldName:  s.FieldName,
			Origin:     entity.OriginSuggested,
			Confidence: &s.Confidence,
		})
	}

	rows := make([]entity.SessionRow, len(catalog.Rows))
	for i, data := range catalog.Rows {
		rows[i] = entity.SessionRow{RowIndex: i, Data: data}
	}

	out, err := generator.Generate(generator.Options{
		Rows:     rows,
		Mappings: mappings,
		Fields:   fields,
		Format:   format,
	})
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		logger.Error("writing output failed", "path", *outPath, "error", err)
		os.Exit(1)
	}
	logger.Info("converted",
		"rows", len(rows),
		"columns", len(fields),
		"out", *outPath,
		"bytes", len(out))
}

func parseFile(path string) (*entity.ParsedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return tabular.Parse(data, path)
}
