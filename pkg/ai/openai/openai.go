package openai

import (
	"sync"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GeoOpenAIClient talks to any OpenAI-compatible chat endpoint. It is the
// provider the reasoning agent uses when AI_ADAPTER=openai.
//
// A GeoOpenAIClient should be created using NewGeoOpenAIClient.
type GeoOpenAIClient struct {
	chatModel string

	chatURL string
	chatKey string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewGeoOpenAIClientParams defines the configuration parameters for
// creating a new GeoOpenAIClient.
//
// ChatModel specifies the default model for chat/completion requests.
// ChatURL and ChatKey configure the chat API endpoint; an empty ChatURL
// means the official OpenAI endpoint.
type NewGeoOpenAIClientParams struct {
	ChatModel string

	ChatURL string
	ChatKey string
}

// NewGeoOpenAIClient creates and returns a new GeoOpenAIClient configured
// with the provided parameters.
//
// Example:
//
//	client := openai.NewGeoOpenAIClient(openai.NewGeoOpenAIClientParams{
//		ChatModel: "gpt-4o-mini",
//		ChatURL:   "https://api.openai.com/v1",
//		ChatKey:   os.Getenv("OPENAI_API_KEY"),
//	})
func NewGeoOpenAIClient(
	params NewGeoOpenAIClientParams,
) *GeoOpenAIClient {
	chatClient := newOpenaiClient(params.ChatURL, params.ChatKey)

	return &GeoOpenAIClient{
		chatModel: params.ChatModel,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		metricsLock: sync.Mutex{},
		metrics: ai.ModelMetrics{
			InputTokens:  0,
			OutputTokens: 0,
			TotalTokens:  0,
			DurationMs:   0,
		},

		ChatClient: chatClient,
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}
