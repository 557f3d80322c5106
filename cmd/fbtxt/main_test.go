package main

import "testing"

func TestDecodeWords(t *testing.T) {
	words, err := decodeWords([]string{"hello", "wörld"}, false)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if len(words) != 2 { t.Fatalf("expected 2 words, got %d", len(words)) }
	if string(words[1]) != "wörld" { t.Fatalf("unexpected word %q", string(words[1])) }

	// "caf\xe9" is "café" in ISO-8859-1
	words, err = decodeWords([]string{"caf\xe9"}, true)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if string(words[0]) != "café" { t.Fatalf("expected %q, got %q", "café", string(words[0])) }

	// without the latin1 flag, raw 8-bit bytes are not valid UTF-8
	// and decode to the replacement rune rather than failing
	words, err = decodeWords([]string{"caf\xe9"}, false)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if string(words[0]) == "café" { t.Fatal("expected mojibake without latin1 decoding") }
}
