package tal3av1

import (
	"strings"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	var codec Codec
	data, err := codec.Marshal(&CompactIndexRequest{Index: "sport", Value: "Football"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"index":"sport","value":"Football"}` {
		t.Errorf("unexpected encoding %s", data)
	}

	var got CompactIndexRequest
	if err := codec.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Index != "sport" || got.Value != "Football" {
		t.Errorf("expected sport/Football, got %+v", got)
	}
}

func TestCodecUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "empty body", body: ""},
		{name: "whitespace body", body: "  \n"},
		{name: "unknown field", body: `{"index":"events","valu":"all"}`, wantErr: "unknown field"},
		{name: "trailing data", body: `{"index":"events"} {}`, wantErr: "trailing data"},
		{name: "malformed", body: `{"index":`, wantErr: "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg CompactIndexRequest
			err := Codec{}.Unmarshal([]byte(tt.body), &msg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
