package exploration

import "testing"

func TestDecodeResultNormalizes(t *testing.T) {
	payload := []byte(`{
		"strategies": [
			{"name": "A", "reason": "r", "howToObtain": "h",
			 "scores": {"revenuePotential": 4, "timeToRevenue": 3,
			            "competitiveAdvantage": 3, "executionFeasibility": 3,
			            "hqContribution": 2, "mergerSynergy": 2}},
			{"name": "B", "confidence": "high", "tags": ["m&a"]}
		],
		"thinkingProcess": "looked at the market"
	}`)

	res, err := DecodeResult(payload)
	if err != nil {
		t.Fatalf("DecodeResult: %v", err)
	}
	if len(res.Strategies) != 2 {
		t.Fatalf("got %d strategies", len(res.Strategies))
	}

	a := res.Strategies[0]
	if a.Tags == nil || len(a.Tags) != 0 {
		t.Errorf("missing tags should default to empty list, got %v", a.Tags)
	}
	if a.Confidence != "medium" {
		t.Errorf("missing confidence should default to medium, got %q", a.Confidence)
	}
	if a.Scores == nil || a.Scores.RevenuePotential != 4 {
		t.Errorf("scores not decoded: %+v", a.Scores)
	}

	b := res.Strategies[1]
	if b.Confidence != "high" || len(b.Tags) != 1 {
		t.Errorf("explicit fields must survive normalization: %+v", b)
	}
	if b.Scores != nil {
		t.Errorf("omitted score block should stay nil, got %+v", b.Scores)
	}
}

func TestDecodeResultRejectsGarbage(t *testing.T) {
	if _, err := DecodeResult([]byte("this is not json {")); err == nil {
		t.Error("expected decode error")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := &Result{
		Strategies: []Strategy{{Name: "A", Tags: []string{}, Confidence: "low"}},
	}
	data, err := EncodeResult(in)
	if err != nil {
		t.Fatalf("EncodeResult: %v", err)
	}
	out, err := DecodeResult(data)
	if err != nil {
		t.Fatalf("DecodeResult: %v", err)
	}
	if out.Strategies[0].Name != "A" || out.Strategies[0].Confidence != "low" {
		t.Errorf("round trip mismatch: %+v", out.Strategies[0])
	}
}
