package builder_test

import (
	"fmt"

	"github.com/qyvip/utoipa/builder"
	"github.com/qyvip/utoipa/descriptor"
)

func ExampleBuilder() {
	pet := descriptor.Object("Pet",
		descriptor.F("id", descriptor.Int64()),
		descriptor.F("name", descriptor.String()),
	)

	b := builder.NewBuilder("Petstore", "1.0.0").
		AddOperation("GET", "/pets/{petId}",
			builder.WithOperationID("getPet"),
			builder.WithPathParam("petId", descriptor.Int64()),
			builder.WithResponse(200, "the pet", builder.ResponseType(pet)),
		)

	doc, err := b.Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	fmt.Println(doc.OpenAPI)
	fmt.Println(doc.Paths.Keys())
	fmt.Println(doc.Components.Schemas.Keys())
	// Output:
	// 3.1.0
	// [/pets/{petId}]
	// [Pet]
}

func ExampleBuilder_diagnostics() {
	b := builder.NewBuilder("API", "1.0.0").
		AddOperation("GET", "/pets", builder.WithOperationID("list"), builder.WithResponse(200, "ok")).
		AddOperation("GET", "/pets", builder.WithOperationID("listAgain"), builder.WithResponse(200, "ok"))

	if _, err := b.Build(); err != nil {
		fmt.Println("build failed:", err)
		return
	}
	for _, d := range b.Diagnostics() {
		fmt.Println(d.Kind)
	}
	// Output:
	// duplicate_route
}
