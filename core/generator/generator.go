// Package generator runs the full pipeline: map the design tree, gather
// usage examples, render the prompt, call the completion provider and parse
// the response.
package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/codegen"
	"github.com/salt-lab/figgen/core/design"
	"github.com/salt-lab/figgen/core/examples"
	"github.com/salt-lab/figgen/core/mapper"
	"github.com/salt-lab/figgen/core/prompt"
	"github.com/salt-lab/figgen/core/providers"
)

// Request is one generation request.
type Request struct {
	// Root is the raw design tree.
	Root *design.Node

	// RawDesign is the design JSON inlined verbatim into the prompt.
	// Optional; when empty only the mapped hierarchy is sent.
	RawDesign string

	// Requirements are free-text extra requirements, rendered as additional
	// numbered prompt lines.
	Requirements []string

	// Examples are pre-supplied usage examples. When set, the example fetch
	// step is skipped entirely.
	Examples []prompt.Example
}

// Result is the outcome of a successful generation.
type Result struct {
	// Code is the generated source text.
	Code string `json:"code"`

	// Imports are the extracted import statements in order of appearance,
	// duplicates included.
	Imports []string `json:"imports"`

	// Dependencies are the inferred external package names.
	Dependencies []string `json:"dependencies"`

	// Warnings are advisory review findings, in fixed check order.
	Warnings []string `json:"warnings"`

	// Model is the model that produced the completion.
	Model string `json:"model"`

	// Usage reports token accounting.
	Usage providers.Usage `json:"usage"`
}

// Generator owns the per-instance state of the pipeline: the catalog, the
// example cache and the completion provider.
type Generator struct {
	cat      *catalog.Catalog
	mapper   *mapper.Mapper
	fetcher  *examples.Fetcher
	provider providers.Provider
	logger   *slog.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New builds a generator. source may be nil, in which case no examples are
// fetched. The example cache is bounded at one entry per catalog component
// and lives as long as the generator.
func New(cat *catalog.Catalog, provider providers.Provider, source examples.Source, opts ...Option) (*Generator, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	if provider == nil {
		return nil, fmt.Errorf("generator: provider is required")
	}

	g := &Generator{
		cat:      cat,
		provider: provider,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.mapper = mapper.NewMapper(cat, g.logger)

	fetcher, err := examples.NewFetcher(source, cat.Size(), g.logger)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	g.fetcher = fetcher

	return g, nil
}

// Generate runs the pipeline for one request. It either returns a complete
// result or fails with a single descriptive error; there is no partial
// success.
func (g *Generator) Generate(ctx context.Context, req *Request) (*Result, error) {
	if req == nil || req.Root == nil {
		return nil, fmt.Errorf("generation failed: no design tree supplied")
	}

	requestID := uuid.NewString()
	logger := g.logger.With("request_id", requestID)

	components := g.mapper.Map(req.Root)
	types := mapper.CollectTypes(components)
	logger.Info("mapped design tree", "components", len(types))

	promptExamples := req.Examples
	if len(promptExamples) == 0 {
		for _, ex := range g.fetcher.FetchAll(ctx, types) {
			promptExamples = append(promptExamples, prompt.Example{Type: ex.Type, Text: ex.Text})
		}
	}

	userPrompt := prompt.Render(prompt.Input{
		Components:   components,
		RawDesign:    req.RawDesign,
		Examples:     promptExamples,
		Requirements: req.Requirements,
	})

	resp, err := g.provider.Complete(ctx, &providers.Request{
		SystemPrompt: SystemPrompt,
		Prompt:       userPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	logger.Info("completion received",
		"model", resp.Model,
		"output_tokens", resp.Usage.OutputTokens)

	code, err := codegen.ExtractCodeBlock(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing completion: %w", err)
	}

	imports := codegen.ExtractImports(code)
	statements := make([]string, len(imports))
	for i, imp := range imports {
		statements[i] = imp.Statement
	}

	return &Result{
		Code:         code,
		Imports:      statements,
		Dependencies: codegen.Dependencies(imports),
		Warnings:     codegen.Review(code),
		Model:        resp.Model,
		Usage:        resp.Usage,
	}, nil
}
