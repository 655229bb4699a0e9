package parser

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestNewUTF8Reader_UTF8PassThrough(t *testing.T) {
	body := `[{"id":1,"name":"Café Society","season":1,"number":1}]`

	r, err := NewUTF8Reader(strings.NewReader(body), "application/json; charset=utf-8")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != body {
		t.Errorf("Expected body unchanged, got %q", got)
	}
}

func TestNewUTF8Reader_Latin1Declared(t *testing.T) {
	// "Café" in ISO-8859-1
	latin1 := []byte{'"', 'C', 'a', 'f', 0xe9, '"'}

	r, err := NewUTF8Reader(bytes.NewReader(latin1), "application/json; charset=iso-8859-1")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != `"Café"` {
		t.Errorf("Expected %q, got %q", `"Café"`, got)
	}
}
