package glossary_test

import (
	"sort"
	"strings"
	"testing"

	"cryptotour/internal/glossary"
)

func TestTerms_SortedAndComplete(t *testing.T) {
	terms := glossary.Terms()
	if !sort.SliceIsSorted(terms, func(i, j int) bool {
		return strings.ToLower(terms[i].Name) < strings.ToLower(terms[j].Name)
	}) {
		t.Fatal("terms not sorted")
	}
	for _, name := range []string{"Digest", "AEAD", "Salt", "HKDF", "Key Derivation Function"} {
		if _, ok := glossary.Lookup(name); !ok {
			t.Fatalf("missing term %q", name)
		}
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	term, ok := glossary.Lookup("  salt ")
	if !ok || term.Name != "Salt" {
		t.Fatalf("Lookup(salt) = %+v, %v", term, ok)
	}
	if _, ok := glossary.Lookup("quantum"); ok {
		t.Fatal("unexpected hit")
	}
}

func TestTerms_ReturnsCopy(t *testing.T) {
	a := glossary.Terms()
	a[0].Name = "changed"
	if glossary.Terms()[0].Name == "changed" {
		t.Fatal("Terms exposes internal slice")
	}
}
