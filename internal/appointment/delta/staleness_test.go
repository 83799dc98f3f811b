package delta

import "testing"

func TestIsStale(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		existing string
		want     bool
	}{
		{
			name:     "no prior record never rejects",
			incoming: "2024-01-01T00:00:00Z",
			existing: "",
			want:     false,
		},
		{
			name:     "strictly newer token applies",
			incoming: "2024-01-02T00:00:00Z",
			existing: "2024-01-01T00:00:00Z",
			want:     false,
		},
		{
			name:     "equal token is stale",
			incoming: "2024-01-01T00:00:00Z",
			existing: "2024-01-01T00:00:00Z",
			want:     true,
		},
		{
			name:     "older token is stale",
			incoming: "2023-12-31T00:00:00Z",
			existing: "2024-01-01T00:00:00Z",
			want:     true,
		},
		{
			name:     "comparison is ordinal, not parsed",
			incoming: "20240101",
			existing: "2024-01-01T00:00:00Z",
			want:     false, // '0' sorts after '-', so the bare token compares greater
		},
		{
			name:     "malformed tokens still compare bytewise",
			incoming: "zzz",
			existing: "aaa",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStale(tt.incoming, tt.existing); got != tt.want {
				t.Fatalf("IsStale(%q, %q) = %v, want %v", tt.incoming, tt.existing, got, tt.want)
			}
		})
	}
}

// IsStale must agree with ordinal <= for every pair of tokens when a prior
// record exists.
func TestIsStaleMatchesOrdinalCompare(t *testing.T) {
	tokens := []string{"", "2023", "2024-01-01T00:00:00Z", "2024-01-01T00:00:01Z", "9", "A", "a"}
	for _, incoming := range tokens {
		for _, existing := range tokens {
			if existing == "" {
				continue
			}
			want := incoming <= existing
			if got := IsStale(incoming, existing); got != want {
				t.Fatalf("IsStale(%q, %q) = %v, want %v", incoming, existing, got, want)
			}
		}
	}
}
