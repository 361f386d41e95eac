package formatting_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/curator/pkg/formatting"
)

type sample struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestParse(t *testing.T) {
	want := sample{Name: "phishing", Items: []string{"a", "b"}}

	tests := []struct {
		name    string
		content string
	}{
		{"plain json", `{"name":"phishing","items":["a","b"]}`},
		{"surrounding whitespace", "\n  {\"name\":\"phishing\",\"items\":[\"a\",\"b\"]}  \n"},
		{"json fence", "```json\n{\"name\":\"phishing\",\"items\":[\"a\",\"b\"]}\n```"},
		{"bare fence", "```\n{\"name\":\"phishing\",\"items\":[\"a\",\"b\"]}\n```"},
		{"prose around object", `Here is the result: {"name":"phishing","items":["a","b"]} hope it helps`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.Parse[sample](tt.content)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFailure(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"not json", "the model refused to answer"},
		{"broken fence", "```json\n{\"name\": \n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formatting.Parse[sample](tt.content)
			if !errors.Is(err, formatting.ErrParseFailed) {
				t.Errorf("Parse error = %v, want ErrParseFailed", err)
			}
		})
	}
}

func TestParseFailureKeepsDecoderError(t *testing.T) {
	_, err := formatting.Parse[sample](`{"name": 7, "items": []}`)
	if !errors.Is(err, formatting.ErrParseFailed) {
		t.Fatalf("Parse error = %v, want ErrParseFailed", err)
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("Parse error = %v, want wrapped *json.UnmarshalTypeError", err)
	}
	if typeErr.Field != "name" {
		t.Errorf("UnmarshalTypeError.Field = %q, want name", typeErr.Field)
	}
}
