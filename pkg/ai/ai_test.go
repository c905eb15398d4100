package ai

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseRisk(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Risk
		wantErr bool
	}{
		{name: "low", input: "low", want: RiskLow},
		{name: "medium", input: "medium", want: RiskMedium},
		{name: "high", input: "high", want: RiskHigh},
		{name: "uppercase", input: "HIGH", want: RiskHigh},
		{name: "whitespace", input: "  Low  ", want: RiskLow},
		{name: "moderate synonym", input: "moderate", want: RiskMedium},
		{name: "critical synonym", input: "critical", want: RiskHigh},
		{name: "minimal synonym", input: "minimal", want: RiskLow},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "banana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRisk(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownRisk) {
					t.Errorf("ParseRisk(%q) error = %v, want ErrUnknownRisk", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRisk(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRisk(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRiskElevated(t *testing.T) {
	if RiskLow.Elevated() {
		t.Error("RiskLow.Elevated() = true, want false")
	}
	if !RiskMedium.Elevated() {
		t.Error("RiskMedium.Elevated() = false, want true")
	}
	if !RiskHigh.Elevated() {
		t.Error("RiskHigh.Elevated() = false, want true")
	}
}

func TestParseAnalysisContent(t *testing.T) {
	content := `{"risk_level":"High","summary":"Blood pressure readings are far above normal range.","health_score":42,"recommendations":["See a cardiologist","Reduce sodium intake"]}`

	got, err := parseAnalysisContent(content)
	if err != nil {
		t.Fatalf("parseAnalysisContent() error = %v", err)
	}
	if got.RiskLevel != RiskHigh {
		t.Errorf("RiskLevel = %v, want %v", got.RiskLevel, RiskHigh)
	}
	if got.HealthScore != 42 {
		t.Errorf("HealthScore = %d, want 42", got.HealthScore)
	}
	if len(got.Recommendations) != 2 {
		t.Errorf("Recommendations length = %d, want 2", len(got.Recommendations))
	}
}

func TestParseAnalysisContentDefaultsRisk(t *testing.T) {
	content := `{"risk_level":"unsure","summary":"Inconclusive.","health_score":70}`

	got, err := parseAnalysisContent(content)
	if err != nil {
		t.Fatalf("parseAnalysisContent() error = %v", err)
	}
	if got.RiskLevel != RiskMedium {
		t.Errorf("RiskLevel = %v, want fallback %v", got.RiskLevel, RiskMedium)
	}
}

func TestParseAnalysisContentClampsScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{name: "negative", score: -5, want: 0},
		{name: "over max", score: 150, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `{"risk_level":"low","summary":"ok","health_score":` + strconv.Itoa(tt.score) + `}`
			got, err := parseAnalysisContent(content)
			if err != nil {
				t.Fatalf("parseAnalysisContent() error = %v", err)
			}
			if got.HealthScore != tt.want {
				t.Errorf("HealthScore = %d, want %d", got.HealthScore, tt.want)
			}
		})
	}
}

func TestParseAnalysisContentMalformed(t *testing.T) {
	if _, err := parseAnalysisContent("this is not json"); !errors.Is(err, ErrMalformedAnswer) {
		t.Errorf("parseAnalysisContent() error = %v, want ErrMalformedAnswer", err)
	}
}
