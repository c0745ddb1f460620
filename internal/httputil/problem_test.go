package httputil

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestNewProblemDetail(t *testing.T) {
	p := NewProblemDetail(http.StatusBadRequest, "Bad Request", "mac is invalid")
	if p.Type != "about:blank" {
		t.Errorf("Type = %q, want about:blank", p.Type)
	}
	if p.Status != http.StatusBadRequest || p.Title != "Bad Request" || p.Detail != "mac is invalid" {
		t.Errorf("ProblemDetail = %+v", p)
	}
}

func TestProblemDetailJSON(t *testing.T) {
	p := BadGateway("nac api unreachable")
	data, err := p.JSON()
	if err != nil {
		t.Fatalf("JSON error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if decoded["status"] != float64(http.StatusBadGateway) {
		t.Errorf("status = %v, want 502", decoded["status"])
	}
	if decoded["detail"] != "nac api unreachable" {
		t.Errorf("detail = %v", decoded["detail"])
	}
}

func TestProblemDetailOmitsEmptyDetail(t *testing.T) {
	p := NotFound("")
	data, err := p.JSON()
	if err != nil {
		t.Fatalf("JSON error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if _, ok := decoded["detail"]; ok {
		t.Error("empty detail should be omitted")
	}
}
