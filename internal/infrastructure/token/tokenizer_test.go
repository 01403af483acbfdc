package token

import (
	"fmt"
	"regexp"
	"testing"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestTokenizeShape(t *testing.T) {
	tok := New("secret").Tokenize("whatsapp:+6591234567")

	if !hexRe.MatchString(tok) {
		t.Fatalf("token %q is not 24 lowercase hex chars", tok)
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	a := New("secret")
	b := New("secret")

	if a.Tokenize("addr") != b.Tokenize("addr") {
		t.Fatalf("same address and secret produced different tokens")
	}
}

func TestTokenizeVariesBySecret(t *testing.T) {
	if New("one").Tokenize("addr") == New("two").Tokenize("addr") {
		t.Fatalf("different secrets produced the same token")
	}
}

func TestTokenizeNoCollisions(t *testing.T) {
	tk := New("secret")
	seen := make(map[string]string)

	for i := 0; i < 1000; i++ {
		addr := fmt.Sprintf("whatsapp:+65%07d", i)
		tok := tk.Tokenize(addr)
		if prev, ok := seen[tok]; ok {
			t.Fatalf("collision between %q and %q", prev, addr)
		}
		seen[tok] = addr
	}
}
