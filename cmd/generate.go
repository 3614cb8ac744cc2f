package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/config"
	"github.com/salt-lab/figgen/core/design"
	"github.com/salt-lab/figgen/core/examples"
	"github.com/salt-lab/figgen/core/generator"
	"github.com/salt-lab/figgen/core/providers"
)

var (
	generateWatch        bool
	generateOutput       string
	generateRequirements []string
)

var generateCmd = &cobra.Command{
	Use:   "generate <design.json>",
	Short: "Generate a Salt React component from an exported Figma design",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager := config.NewManager(configPath)
		if err := manager.Load(); err != nil {
			return err
		}
		cfg := manager.Get()

		gen, err := buildGenerator(cfg)
		if err != nil {
			return err
		}

		designPath := args[0]
		if err := runGeneration(cmd.Context(), gen, designPath); err != nil {
			return err
		}

		if generateWatch {
			return watchAndRegenerate(cmd.Context(), gen, designPath)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "regenerate when the design file changes")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write generated code to file instead of stdout")
	generateCmd.Flags().StringArrayVarP(&generateRequirements, "requirement", "r", nil, "extra requirement passed to the prompt (repeatable)")
	rootCmd.AddCommand(generateCmd)
}

func buildGenerator(cfg *config.Config) (*generator.Generator, error) {
	provider, err := providers.New(providers.ProviderType(cfg.Provider), cfg.OpenAI, cfg.Anthropic)
	if err != nil {
		return nil, err
	}

	var source examples.Source
	if !cfg.Examples.Disabled && cfg.Examples.BaseURL != "" {
		source = examples.NewQnAClient(cfg.Examples.BaseURL, cfg.Examples.APIKey, cfg.Examples.Timeout)
	}

	return generator.New(catalog.Default(), provider, source)
}

func runGeneration(ctx context.Context, gen *generator.Generator, designPath string) error {
	data, err := os.ReadFile(designPath)
	if err != nil {
		return fmt.Errorf("reading design file: %w", err)
	}

	root, err := design.DecodeDocument(data)
	if err != nil {
		return err
	}

	result, err := gen.Generate(ctx, &generator.Request{
		Root:         root,
		RawDesign:    strings.TrimSpace(string(data)),
		Requirements: generateRequirements,
	})
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	if len(result.Dependencies) > 0 {
		fmt.Fprintf(os.Stderr, "dependencies: %s\n", strings.Join(result.Dependencies, ", "))
	}

	if generateOutput != "" {
		if err := os.WriteFile(generateOutput, []byte(result.Code), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		slog.Info("component written", "path", generateOutput, "model", result.Model)
		return nil
	}

	fmt.Println(result.Code)
	return nil
}

// watchAndRegenerate reruns the pipeline whenever the design file is written.
// Editors replace files on save, so the parent directory is watched and
// events are filtered by name.
func watchAndRegenerate(ctx context.Context, gen *generator.Generator, designPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(designPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	target := filepath.Clean(designPath)
	slog.Info("watching design file", "path", target)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Info("design changed, regenerating")
			if err := runGeneration(ctx, gen, designPath); err != nil {
				slog.Error("regeneration failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		}
	}
}
