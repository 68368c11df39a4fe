package token

import "testing"

func TestLookupIdentifierResolvesKeywords(t *testing.T) {
	cases := map[string]Kind{
		"fn":    KwFn,
		"mut":   KwMut,
		"for":   KwFor,
		"hello": Identifier,
		"i32":   KwI32,
		"i33":   Identifier,
	}
	for lexeme, want := range cases {
		if got := LookupIdentifier(lexeme); got != want {
			t.Errorf("LookupIdentifier(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestKindStringFormatsKeywordsAndPunctuation(t *testing.T) {
	if got := KwReturn.String(); got != "'return'" {
		t.Fatalf(`expected "'return'", got %q`, got)
	}
	if got := DoubleAmpersandEquals.String(); got != "'&&='" {
		t.Fatalf(`expected "'&&='", got %q`, got)
	}
	if got := Kind(9999).String(); got != "unknown token" {
		t.Fatalf(`expected "unknown token" for an out-of-range Kind, got %q`, got)
	}
}

func TestIntegerSuffixesClosedSet(t *testing.T) {
	for _, s := range []string{"u8", "i64", "usize", "isize"} {
		if !IntegerSuffixes[s] {
			t.Errorf("expected %q to be a recognized integer suffix", s)
		}
	}
	if IntegerSuffixes["f32"] {
		t.Fatalf("expected f32 to not be a recognized integer suffix")
	}
}
