package main

import "testing"

func TestIsYes(t *testing.T) {
	for _, in := range []string{"s\n", "SIM", " y ", "yes"} {
		if !isYes(in) {
			t.Fatalf("expected %q to confirm", in)
		}
	}
	for _, in := range []string{"", "\n", "n", "não"} {
		if isYes(in) {
			t.Fatalf("expected %q not to confirm", in)
		}
	}
}
