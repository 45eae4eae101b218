package ollama

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai"

	"github.com/ollama/ollama/api"
	"golang.org/x/sync/semaphore"
)

// GeoOllamaClient implements the ai.ChatClient interface against a
// locally-hosted Ollama server. Concurrent requests are capped through a
// weighted semaphore so a small host is not overrun.
type GeoOllamaClient struct {
	chatModel string

	reqLock *semaphore.Weighted

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client

	Client *api.Client
}

// NewGeoOllamaClientParams contains configuration options for creating a new GeoOllamaClient.
type NewGeoOllamaClientParams struct {
	ChatModel string

	BaseURL string
	ApiKey  string

	MaxConcurrentRequests int64
}

type headerTransport struct {
	headers map[string]string
	rt      http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so original request isn't modified
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		// don't overwrite if already set
		if r.Header.Get(k) == "" {
			r.Header.Set(k, v)
		}
	}
	return t.rt.RoundTrip(r)
}

// NewGeoOllamaClient creates a new Ollama-based chat client with the
// specified configuration. It connects to the Ollama server at the given
// BaseURL (or the default if empty).
func NewGeoOllamaClient(
	params NewGeoOllamaClientParams,
) (*GeoOllamaClient, error) {
	var (
		u   *url.URL
		err error
	)

	if params.BaseURL != "" {
		u, err = url.Parse(params.BaseURL)
		if err != nil {
			return nil, err
		}
	}

	httpClient := &http.Client{
		Transport: &headerTransport{
			headers: map[string]string{
				"Authorization": "Bearer " + params.ApiKey,
			},
			rt: http.DefaultTransport,
		},
	}

	cli := api.NewClient(u, httpClient)

	if params.MaxConcurrentRequests <= 0 {
		params.MaxConcurrentRequests = 1
	}
	sem := semaphore.NewWeighted(params.MaxConcurrentRequests)

	return &GeoOllamaClient{
		chatModel: params.ChatModel,

		reqLock: sem,

		metricsLock: sync.Mutex{},
		metrics: ai.ModelMetrics{
			InputTokens:  0,
			OutputTokens: 0,
			TotalTokens:  0,
			DurationMs:   0,
		},

		baseURL:    u,
		apiKey:     params.ApiKey,
		httpClient: httpClient,

		Client: cli,
	}, nil
}
