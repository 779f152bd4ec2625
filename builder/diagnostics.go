package builder

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a build diagnostic.
type DiagnosticKind string

const (
	// KindSchemaNameConflict reports two structurally different shapes
	// registered under the same schema name. The first registration wins.
	KindSchemaNameConflict DiagnosticKind = "schema_name_conflict"
	// KindDanglingReference reports a $ref to a schema name absent from
	// components.schemas.
	KindDanglingReference DiagnosticKind = "dangling_reference"
	// KindUnboundPathParameter reports a path template placeholder with
	// no matching declared path parameter.
	KindUnboundPathParameter DiagnosticKind = "unbound_path_parameter"
	// KindUnusedDeclaredParameter reports a declared path parameter with
	// no matching template placeholder.
	KindUnusedDeclaredParameter DiagnosticKind = "unused_declared_parameter"
	// KindDuplicateRoute reports two handlers registered for the same
	// method and path. The first registration wins.
	KindDuplicateRoute DiagnosticKind = "duplicate_route"
	// KindDuplicateOperationID reports an operationId used by more than
	// one operation. The first registration keeps the id.
	KindDuplicateOperationID DiagnosticKind = "duplicate_operation_id"
	// KindModifierInducedInconsistency reports a dangling reference that
	// appeared only after modifiers ran.
	KindModifierInducedInconsistency DiagnosticKind = "modifier_induced_inconsistency"
	// KindInvalidMethod reports a handler whose method is not a known
	// HTTP method. The handler is skipped.
	KindInvalidMethod DiagnosticKind = "invalid_method"
	// KindInvalidStatusCode reports a response declared with a status
	// outside the valid HTTP range. The response is skipped.
	KindInvalidStatusCode DiagnosticKind = "invalid_status_code"
)

// Fatal reports whether a diagnostic of this kind makes Build return a
// non-nil error alongside the document.
func (k DiagnosticKind) Fatal() bool {
	switch k {
	case KindDanglingReference, KindModifierInducedInconsistency:
		return true
	}
	return false
}

// Location pins a diagnostic to the route that first claimed a
// contested name or slot.
type Location struct {
	Method string
	Path   string
}

// String formats the location as "METHOD path".
func (l Location) String() string {
	return strings.ToUpper(l.Method) + " " + l.Path
}

// Diagnostic is a single structured finding from a build. It
// implements error so diagnostics can flow through errors.Join and
// errors.As.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string

	// Route context, when the finding is tied to an operation.
	Method      string
	Path        string
	OperationID string

	// Subject names the contested thing: a schema name, parameter
	// name, or operationId, depending on Kind.
	Subject string

	// FirstOccurrence points at the earlier registration that won a
	// first-wins conflict. Nil for diagnostics without a rival.
	FirstOccurrence *Location
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	sb.WriteString(string(d.Kind))
	if d.Method != "" && d.Path != "" {
		sb.WriteString(": ")
		sb.WriteString(Location{Method: d.Method, Path: d.Path}.String())
	}
	if d.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(d.Message)
	}
	if d.FirstOccurrence != nil {
		fmt.Fprintf(&sb, " (first registered by %s)", d.FirstOccurrence)
	}
	return sb.String()
}

// Diagnostics is an ordered collection of findings from one build.
type Diagnostics []*Diagnostic

// Error implements the error interface, joining all findings.
func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no diagnostics"
	case 1:
		return ds[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d diagnostics:", len(ds))
	for _, d := range ds {
		sb.WriteString("\n\t")
		sb.WriteString(d.Error())
	}
	return sb.String()
}

// Unwrap supports errors.Is and errors.As across the collection.
func (ds Diagnostics) Unwrap() []error {
	errs := make([]error, len(ds))
	for i, d := range ds {
		errs[i] = d
	}
	return errs
}

// HasKind reports whether any finding has the given kind.
func (ds Diagnostics) HasKind(kind DiagnosticKind) bool {
	for _, d := range ds {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// OfKind returns the findings with the given kind, in order.
func (ds Diagnostics) OfKind(kind DiagnosticKind) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// fatal returns the findings whose kind makes the build fail, or nil.
func (ds Diagnostics) fatal() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind.Fatal() {
			out = append(out, d)
		}
	}
	return out
}
