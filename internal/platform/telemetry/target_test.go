package telemetry

import "testing"

func TestOTLPTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint     string
		wantHost     string
		wantInsecure bool
	}{
		{"http://localhost:4318", "localhost:4318", true},
		{"https://otel.example.com", "otel.example.com", false},
		{"https://otel.example.com:4318/v1", "otel.example.com:4318", false},
		{"collector:4318", "collector:4318", true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			t.Parallel()
			host, insecure, err := otlpTarget(tt.endpoint)
			if err != nil {
				t.Fatalf("otlpTarget(%q) error = %v", tt.endpoint, err)
			}
			if host != tt.wantHost || insecure != tt.wantInsecure {
				t.Errorf("otlpTarget(%q) = (%q, %v), want (%q, %v)",
					tt.endpoint, host, insecure, tt.wantHost, tt.wantInsecure)
			}
		})
	}

	if _, _, err := otlpTarget(""); err == nil {
		t.Error("otlpTarget(\"\") error = nil, want error")
	}
}
