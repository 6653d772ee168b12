package analysis

import (
	"testing"

	"github.com/spacesedan/mooddecode/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Local(t *testing.T) {
	cfg := &config.Config{
		MoodProvider:    config.ProviderLocal,
		CrisisProvider:  config.ProviderLocal,
		SummaryProvider: config.ProviderLocal,
		MaxTextLength:   100,
	}

	g, err := Build(cfg)
	require.NoError(t, err)
	assert.NotNil(t, g.Service)
	assert.Empty(t, g.Pingers)
	assert.NoError(t, g.Close())
}

func TestBuild_MixedProvidersRegisterPingers(t *testing.T) {
	cfg := &config.Config{
		MoodProvider:    config.ProviderHuggingFace,
		CrisisProvider:  config.ProviderLLM,
		SummaryProvider: config.ProviderLocal,
		MaxTextLength:   100,
		LLM: config.LLMConfig{
			APIKey:  "key",
			BaseURL: "http://127.0.0.1:1/",
			Model:   "m",
		},
		HuggingFace: config.HuggingFaceConfig{
			BaseURL:      "http://127.0.0.1:1/",
			EmotionModel: "org/emotion",
		},
	}

	g, err := Build(cfg)
	require.NoError(t, err)
	assert.Contains(t, g.Pingers, CapabilityMood)
	assert.Contains(t, g.Pingers, CapabilityCrisis)
	assert.NotContains(t, g.Pingers, CapabilitySummary)
}

func TestBuild_UnknownProvider(t *testing.T) {
	cfg := &config.Config{
		MoodProvider:    config.ProviderLocal,
		CrisisProvider:  "carrier-pigeon",
		SummaryProvider: config.ProviderLocal,
	}

	_, err := Build(cfg)
	assert.ErrorContains(t, err, "carrier-pigeon")
}
