package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.GetModel(TierLite))
	assert.NotEmpty(t, cfg.GetModel(TierStandard))
	assert.NotEmpty(t, cfg.GetModel(TierAdvanced))
}

func TestGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
		},
	}

	// Unknown tier falls back to standard
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierAdvanced))

	// No models at all yields empty
	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	cfg := DefaultConfig()
	original := cfg.GetModel(TierStandard)

	modified := cfg.WithModel(TierStandard, "gemini-experimental")

	assert.Equal(t, "gemini-experimental", modified.GetModel(TierStandard))
	assert.Equal(t, original, cfg.GetModel(TierStandard))
}
