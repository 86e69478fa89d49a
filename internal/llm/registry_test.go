package llm

import (
	"context"
	"strings"
	"testing"
)

type stubProvider struct {
	name      string
	available bool
}

func (s *stubProvider) Name() string         { return s.name }
func (s *stubProvider) DefaultModel() string { return s.name + "-model" }
func (s *stubProvider) IsAvailable() bool    { return s.available }

func (s *stubProvider) Generate(_ context.Context, _ GenerateRequest) (*GenerateResponse, error) {
	return &GenerateResponse{Text: "ok", Provider: s.name}, nil
}

func TestRegistryAutoSelectsFirstAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubProvider{name: "alpha", available: false})
	r.Register(&stubProvider{name: "beta", available: true})
	r.Register(&stubProvider{name: "gamma", available: true})

	for _, name := range []string{"auto", ""} {
		p, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if p.Name() != "beta" {
			t.Errorf("Get(%q) = %s, want beta", name, p.Name())
		}
	}
}

func TestRegistryAutoNoneAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubProvider{name: "alpha", available: false})

	if _, err := r.Get("auto"); err == nil {
		t.Fatal("expected error when no provider is available")
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubProvider{name: "alpha", available: true})

	_, err := r.Get("omega")
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "omega") {
		t.Errorf("error should name the provider: %v", err)
	}
}

func TestRegistryUnavailableNamedProvider(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubProvider{name: "alpha", available: false})
	r.Register(&stubProvider{name: "beta", available: true})

	// An explicitly named provider never silently falls back.
	_, err := r.Get("alpha")
	if err == nil {
		t.Fatal("expected error for unavailable provider")
	}
	if !strings.Contains(err.Error(), "alpha") {
		t.Errorf("error should name the provider: %v", err)
	}
}

func TestRegistryAvailableListing(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubProvider{name: "alpha", available: false})
	r.Register(&stubProvider{name: "beta", available: true})

	statuses := r.Available()
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	if statuses[0].Name != "alpha" || statuses[0].Available {
		t.Errorf("status[0] = %+v", statuses[0])
	}
	if statuses[1].Name != "beta" || !statuses[1].Available {
		t.Errorf("status[1] = %+v", statuses[1])
	}
}

func TestRegistryModelsCatalogFiltersByAvailability(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubProvider{name: "openai", available: true})
	r.Register(&stubProvider{name: "google", available: false})

	catalog := r.ModelsCatalog()
	if _, ok := catalog["gpt-5.1"]; !ok {
		t.Error("expected openai models in catalog")
	}
	if _, ok := catalog["gemini-2.5-pro"]; ok {
		t.Error("unavailable provider's models should be excluded")
	}
}

func TestRegistryOllamaDynamicCatalogEntry(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubProvider{name: "ollama", available: true})

	catalog := r.ModelsCatalog()
	info, ok := catalog["ollama-model"]
	if !ok {
		t.Fatal("expected ollama default model in catalog")
	}
	if info.Provider != "ollama" {
		t.Errorf("provider = %q", info.Provider)
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := estimateTokens(""); got != 1 {
		t.Errorf("empty text = %d, want 1", got)
	}
	if got := estimateTokens(strings.Repeat("a", 40)); got != 10 {
		t.Errorf("40 chars = %d tokens, want 10", got)
	}
}
