// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tone

import (
	"errors"
	"testing"
)

func TestCatalogCoversEveryKind(t *testing.T) {
	kinds := []Kind{Professional, Polite, Casual, Friendly, Persuasive, Humorous, Urgent}

	if got := len(Catalog()); got != len(kinds) {
		t.Fatalf("Catalog() has %d entries, want %d", got, len(kinds))
	}

	seen := make(map[Kind]int)
	for _, o := range Catalog() {
		seen[o.ID]++
		if o.Label == "" || o.Icon == "" || o.Description == "" {
			t.Errorf("catalog entry %q has empty metadata: %+v", o.ID, o)
		}
	}
	for _, k := range kinds {
		if seen[k] != 1 {
			t.Errorf("kind %q appears %d times in catalog, want 1", k, seen[k])
		}
	}
}

func TestDefaultIsPolite(t *testing.T) {
	if Default != Polite {
		t.Errorf("Default = %q, want polite", Default)
	}
	if !Default.Valid() {
		t.Error("Default should be a valid kind")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"polite", Polite, false},
		{"  URGENT ", Urgent, false},
		{"Humorous", Humorous, false},
		{"rude", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownTone) {
				t.Errorf("Parse(%q) error = %v, want ErrUnknownTone", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBadge(t *testing.T) {
	o, ok := Lookup(Polite)
	if !ok {
		t.Fatal("Lookup(Polite) not found")
	}
	if got := o.Badge(); got != "สุภาพ" {
		t.Errorf("Badge() = %q, want %q", got, "สุภาพ")
	}

	single := Option{Label: "single"}
	if got := single.Badge(); got != "single" {
		t.Errorf("Badge() without space = %q, want %q", got, "single")
	}
}

func TestAllOrderMatchesCatalog(t *testing.T) {
	all := All()
	for i, o := range Catalog() {
		if all[i] != o.ID {
			t.Errorf("All()[%d] = %q, want %q", i, all[i], o.ID)
		}
		if Index(o.ID) != i {
			t.Errorf("Index(%q) = %d, want %d", o.ID, Index(o.ID), i)
		}
	}
	if Index("nope") != -1 {
		t.Error("Index of unknown kind should be -1")
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Label = "changed"
	if o, _ := Lookup(c[0].ID); o.Label == "changed" {
		t.Error("mutating Catalog() result changed the package catalog")
	}
}
