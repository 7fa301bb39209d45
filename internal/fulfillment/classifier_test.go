package fulfillment

import "testing"

func TestIsWalsworthNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "mixed note", content: "Walsworth processed: Qty 2 of [A]. Walsworth DID NOT process: Qty 1 of [B].", want: true},
		{name: "fully processed note", content: "Walsworth processed: Qty 2 of [Widget]", want: true},
		{name: "not-processed marker alone", content: "Walsworth DID NOT process: Qty 1 of [B].", want: false},
		{name: "unrelated note", content: "Customer requested gift wrap.", want: false},
		{name: "empty", content: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsWalsworthNote(tt.content); got != tt.want {
				t.Fatalf("IsWalsworthNote(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestIsMixedNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "both markers", content: "Walsworth processed: Qty 2 of [A]. Walsworth DID NOT process: Qty 1 of [B].", want: true},
		{name: "processed only", content: "Walsworth processed: Qty 2 of [Widget]", want: false},
		{name: "not processed only", content: "Walsworth DID NOT process: Qty 1 of [B].", want: false},
		{name: "empty", content: "", want: false},
		{name: "line break inside marker", content: "Walsworth\nprocessed: Qty 1 of [A]. Walsworth DID\nNOT process: Qty 2 of [B].", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsMixedNote(tt.content); got != tt.want {
				t.Fatalf("IsMixedNote(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

// The alert test is deliberately looser than the digest test: a fully
// processed note still triggers an immediate alert but never a digest row.
func TestClassifierAsymmetry(t *testing.T) {
	t.Parallel()

	content := "Walsworth processed: Qty 2 of [Widget]"
	if !IsWalsworthNote(content) {
		t.Fatal("fully processed note should pass the loose test")
	}
	if IsMixedNote(content) {
		t.Fatal("fully processed note must fail the strict test")
	}
}
