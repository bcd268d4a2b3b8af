package utensorcgen_test

import (
	"context"
	"strings"
	"testing"

	utensorcgen "github.com/neil-tan/utensor-cgen"
	"github.com/neil-tan/utensor-cgen/pkg/manifest"
)

func TestDefaultRegistry(t *testing.T) {
	registry, err := utensorcgen.DefaultRegistry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	if !registry.Has("tensor-names") {
		t.Fatalf("expected tensor-names snippet, have %v", registry.List())
	}
}

func TestGenerate(t *testing.T) {
	count := 2
	m := manifest.Manifest{
		HeaderGuard: "FACADE_H",
		NumTensors:  &count,
		Tensors: []manifest.Entry{
			{Name: "TENSOR_A", Index: 0},
			{Name: "TENSOR_B", Index: 1},
		},
	}

	output, err := utensorcgen.Generate(context.Background(), m, "tensor-names")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	text := string(output)

	for _, want := range []string{
		"#ifndef _FACADE_H",
		"//typedef uchar TName;",
		"#define TENSOR_A 0",
		"#define TENSOR_B 1",
		"#endif // _FACADE_H",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}
}

func TestGenerate_UnknownSnippet(t *testing.T) {
	if _, err := utensorcgen.Generate(context.Background(), manifest.Manifest{}, "nope"); err == nil {
		t.Fatal("expected unknown snippet to fail")
	}
}
