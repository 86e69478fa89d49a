package llm

import (
	"fmt"

	"github.com/nratzan/dit-2026/internal/config"
	"github.com/nratzan/dit-2026/internal/logger"
)

// ProviderStatus is the public listing entry for one registered provider.
type ProviderStatus struct {
	Name      string `json:"name"`
	Model     string `json:"model"`
	Available bool   `json:"available"`
}

// Registry holds providers in registration order. "auto" selection scans that
// order and picks the first available provider.
type Registry struct {
	order     []string
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

func (r *Registry) Register(p Provider) {
	if _, exists := r.providers[p.Name()]; !exists {
		r.order = append(r.order, p.Name())
	}
	r.providers[p.Name()] = p
}

// Get resolves a provider by name. "auto" returns the first available
// provider in registration order; a named provider that is unknown or
// unavailable is an error identifying it, never a silent fallback.
func (r *Registry) Get(name string) (Provider, error) {
	if name == "" || name == "auto" {
		for _, n := range r.order {
			if p := r.providers[n]; p.IsAvailable() {
				return p, nil
			}
		}
		return nil, fmt.Errorf("no LLM providers available: set OPENAI_API_KEY, ANTHROPIC_API_KEY, or GOOGLE_API_KEY, or run Ollama locally")
	}

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (registered: %v)", name, r.order)
	}
	if !p.IsAvailable() {
		return nil, fmt.Errorf("provider %q is not available: check its API key or service", name)
	}
	return p, nil
}

// Available lists every registered provider with its availability.
func (r *Registry) Available() []ProviderStatus {
	out := make([]ProviderStatus, 0, len(r.order))
	for _, n := range r.order {
		p := r.providers[n]
		out = append(out, ProviderStatus{Name: p.Name(), Model: p.DefaultModel(), Available: p.IsAvailable()})
	}
	return out
}

// ModelsCatalog returns the catalog filtered to available providers. Ollama
// serves dynamic local models, so it contributes a single default entry.
func (r *Registry) ModelsCatalog() map[string]ModelInfo {
	out := make(map[string]ModelInfo)
	for _, n := range r.order {
		p := r.providers[n]
		if !p.IsAvailable() {
			continue
		}
		if p.Name() == "ollama" {
			out[p.DefaultModel()] = ModelInfo{
				Provider:    "ollama",
				Label:       p.DefaultModel(),
				Description: "Local model via Ollama",
			}
			continue
		}
		for id, info := range ModelsForProvider(p.Name()) {
			out[id] = info
		}
	}
	return out
}

// NewRegistryFromConfig registers all vendor adapters in auto-selection order.
func NewRegistryFromConfig(cfg *config.Config) *Registry {
	r := NewRegistry()

	r.Register(NewOpenAIProvider(cfg.OpenAIAPIKey))
	r.Register(NewAnthropicProvider(cfg.AnthropicAPIKey))

	google, err := NewGoogleProvider(cfg.GoogleAPIKey)
	if err != nil {
		logger.Warn("google provider disabled", "error", err)
	} else {
		r.Register(google)
	}

	r.Register(NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel))

	return r
}
