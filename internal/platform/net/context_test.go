package net

import (
	"context"
	"testing"
)

func TestWithRequest(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-1", "crack.vigenere")
	if got := RequestID(ctx); got != "req-1" {
		t.Fatalf("RequestID = %q", got)
	}
	if got := Op(ctx); got != "crack.vigenere" {
		t.Fatalf("Op = %q", got)
	}
}

func TestWithRequestEmpty(t *testing.T) {
	ctx := WithRequest(context.Background(), "", "")
	if RequestID(ctx) != "" || Op(ctx) != "" {
		t.Fatalf("empty values should not be stored")
	}
}
