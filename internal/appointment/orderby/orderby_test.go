package orderby

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		key  string
		want Order
	}{
		{"appointed_on", Order{Field: FieldAppointedOn}},
		{"resigned_on", Order{Field: FieldResignedOn}},
		{"surname", Order{Field: FieldSurname}},
		{"", Default},
		{"unknown_key", Default},
		{"APPOINTED_ON", Default},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := Resolve(tt.key); got != tt.want {
				t.Fatalf("Resolve(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestDefaultIsDeterministic(t *testing.T) {
	if Default.Field != FieldAppointmentID || Default.Descending {
		t.Fatalf("default ordering must be appointment_id ascending, got %+v", Default)
	}
}
