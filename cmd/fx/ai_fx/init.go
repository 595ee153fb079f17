package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvidePromptService,
	ProvidePlanExtractor)

// CompletionConfig holds configuration for the chat model client.
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates a chat client based on environment variables.
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	return utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
}

func ProvidePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func ProvidePlanExtractor() services.PlanExtractorInterface {
	return services.NewPlanExtractor()
}

func getCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
