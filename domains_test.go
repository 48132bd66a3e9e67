package main

import (
	"reflect"
	"testing"
)

func TestDomainSetAdd(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{name: "valid domain", domain: "example.com", want: true},
		{name: "deep domain", domain: "a.b.example.co.uk", want: true},
		{name: "single label", domain: "localhost", want: false},
		{name: "empty string", domain: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDomainSet()
			if got := s.Add(tt.domain); got != tt.want {
				t.Errorf("Add(%q) = %v, want %v", tt.domain, got, tt.want)
			}
			if s.Contains(tt.domain) != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.domain, !tt.want, tt.want)
			}
		})
	}
}

func TestDomainSetAddIdempotent(t *testing.T) {
	s := NewDomainSet()
	if !s.Add("example.com") {
		t.Fatal("first Add returned false")
	}
	if s.Add("example.com") {
		t.Error("second Add returned true")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestDomainSetSorted(t *testing.T) {
	s := NewDomainSet()
	s.AddAll([]string{"b.example.com", "a.example.com", "c.example.com"})

	want := []string{"a.example.com", "b.example.com", "c.example.com"}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}

func TestAugmentationTables(t *testing.T) {
	// Every entry in the static tables must survive DomainSet validation,
	// otherwise a table typo would silently shrink the output.
	for _, table := range [][]string{googleDomains, blogspotDomains} {
		s := NewDomainSet()
		s.AddAll(table)
		if s.Len() != len(table) {
			t.Errorf("table of %d domains produced a set of %d", len(table), s.Len())
		}
	}
}
