// Package utoipa generates OpenAPI 3.x documents from code.
//
// Instead of parsing handwritten specification files, utoipa assembles
// a document from descriptors registered by the application: type
// descriptors become deduplicated schemas under components.schemas,
// and handler descriptors become operations under paths. The output is
// deterministic; registration order fixes the order of schemas, paths,
// methods, and response codes in the serialized document.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - descriptor: Describe data shapes and handlers, by hand or via reflection
//   - builder: Assemble descriptors into a document with conflict diagnostics
//   - spec: The OpenAPI document model with order-preserving serialization
//
// # Quick Start
//
// Describe a type and an operation, then build:
//
//	import (
//		"github.com/qyvip/utoipa/builder"
//		"github.com/qyvip/utoipa/descriptor"
//	)
//
//	pet := descriptor.Object("Pet",
//		descriptor.F("id", descriptor.Int64()),
//		descriptor.F("name", descriptor.String()),
//		descriptor.Opt("tag", descriptor.String()),
//	)
//
//	b := builder.NewBuilder("Petstore", "1.0.0").
//		AddOperation("GET", "/pets/{petId}",
//			builder.WithOperationID("getPet"),
//			builder.WithPathParam("petId", descriptor.Int64()),
//			builder.WithResponse(200, "the pet", builder.ResponseType(pet)),
//		)
//
//	doc, err := b.Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := builder.WriteFile("openapi.yaml", doc); err != nil {
//		log.Fatal(err)
//	}
//
// Derive descriptors from Go types instead of writing them by hand:
//
//	var r descriptor.Reflector
//	pet, err := r.TypeOf(Pet{})
//
// # Conflict Handling
//
// Duplicate schema names, duplicate routes, and duplicate operation
// ids do not abort a build. The first registration wins, the later one
// is dropped or adjusted, and a structured Diagnostic records what
// happened. Only broken schema references make Build return an error,
// and even then the assembled document is returned for inspection.
//
//	doc, err := b.Build()
//	for _, d := range b.Diagnostics() {
//		log.Printf("openapi: %v", d)
//	}
//
// # Modifiers
//
// Modifiers mutate the assembled document before Build returns it,
// running in registration order. They are the hook for concerns that
// do not belong to any single handler, such as injecting security
// schemes or environment-specific server lists:
//
//	b.AddModifier(builder.ModifierFunc(func(doc *spec.Document) {
//		doc.Servers = []*spec.Server{{URL: "https://api.example.com"}}
//	}))
//
// # Concurrency
//
// A Builder is a plain accumulator and not goroutine-safe. Wrap a
// fully registered Builder in a builder.Provider to share the built
// document: the build runs exactly once and every caller observes the
// same result.
package utoipa
