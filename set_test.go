package tinge

import (
	"slices"
	"testing"
)

func TestSet_InsertContains(t *testing.T) {
	t.Parallel()

	var s Set[Attribute]
	if !s.IsEmpty() {
		t.Error("zero set should be empty")
	}
	if s.Contains(Bold) {
		t.Error("zero set should not contain bold")
	}

	s = s.Insert(Bold).Insert(Underline)
	if s.IsEmpty() {
		t.Error("set with members should not be empty")
	}
	if !s.Contains(Bold) || !s.Contains(Underline) {
		t.Error("set should contain inserted members")
	}
	if s.Contains(Italic) {
		t.Error("set should not contain italic")
	}
}

func TestSet_InsertIsIdempotent(t *testing.T) {
	t.Parallel()

	s := Set[Attribute]{}.Insert(Bold)
	if got := s.Insert(Bold); got != s {
		t.Errorf("reinserting bold changed the set: %v != %v", got, s)
	}
}

func TestSet_AllOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		insert []Attribute
		want   []Attribute
	}{
		{
			name:   "empty_set_yields_nil",
			insert: nil,
			want:   nil,
		},
		{
			name:   "single_member",
			insert: []Attribute{Italic},
			want:   []Attribute{Italic},
		},
		{
			name:   "insertion_order_does_not_matter",
			insert: []Attribute{Strike, Bold, Underline},
			want:   []Attribute{Bold, Underline, Strike},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s Set[Attribute]
			for _, a := range tt.insert {
				s = s.Insert(a)
			}
			if got := s.All(); !slices.Equal(got, tt.want) {
				t.Errorf("All() = %v, want %v", got, tt.want)
			}
		})
	}
}
