package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/staffing-engine/internal/llm"
)

// loadJSONFile reads a JSON file into dst
func loadJSONFile(path string, dst any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, dst); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// writeJSONFile marshals src with indentation and writes it to path,
// creating the output directory when needed.
func writeJSONFile(path string, src any) error {
	output, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// newLLMClient builds an LLM client from a flag value or the environment,
// applying an optional standard-tier model override. Returns nil when no
// key is available; callers then run deterministically.
func newLLMClient(ctx context.Context, apiKey, model string) (llm.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil
	}
	cfg := llm.DefaultConfig()
	if model != "" {
		cfg = cfg.WithModel(llm.TierStandard, model)
	}
	return llm.NewClient(ctx, cfg, apiKey)
}
