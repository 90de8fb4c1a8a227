// Package wellknown carries hover documentation for the names every proto
// file can use without declaring them: the scalar builtin types and the
// google.protobuf well-known types. The summaries follow
// https://protobuf.dev/reference/protobuf/google.protobuf/ and the scalar
// table in the proto3 language guide.
package wellknown

import "strings"

const wellKnownPrefix = "google.protobuf."

// Lookup returns the documentation for a builtin scalar type or a well-known
// google.protobuf type named by identifier.
func Lookup(identifier string) (string, bool) {
	if name, ok := strings.CutPrefix(identifier, wellKnownPrefix); ok {
		doc, ok := wellKnownDocs[name]
		return doc, ok
	}
	doc, ok := builtinDocs[identifier]
	return doc, ok
}

// IsWellKnown reports whether identifier names a google.protobuf well-known
// type. Files that reference these still need the matching import, but the
// server never tries to resolve them as user-defined symbols.
func IsWellKnown(identifier string) bool {
	name, ok := strings.CutPrefix(identifier, wellKnownPrefix)
	if !ok {
		return false
	}
	_, ok = wellKnownDocs[name]
	return ok
}

var builtinDocs = map[string]string{
	"int32":    "Uses variable-length encoding. Inefficient for encoding negative numbers; if your field is likely to have negative values, use sint32 instead.",
	"int64":    "Uses variable-length encoding. Inefficient for encoding negative numbers; if your field is likely to have negative values, use sint64 instead.",
	"uint32":   "Uses variable-length encoding.",
	"uint64":   "Uses variable-length encoding.",
	"sint32":   "Uses variable-length encoding. Signed int value. These more efficiently encode negative numbers than regular int32s.",
	"sint64":   "Uses variable-length encoding. Signed int value. These more efficiently encode negative numbers than regular int64s.",
	"fixed32":  "Always four bytes. More efficient than uint32 if values are often greater than 2^28.",
	"fixed64":  "Always eight bytes. More efficient than uint64 if values are often greater than 2^56.",
	"sfixed32": "Always four bytes.",
	"sfixed64": "Always eight bytes.",
	"float":    "A 32-bit floating point number.",
	"double":   "A 64-bit floating point number.",
	"string":   "A string must always contain UTF-8 encoded or 7-bit ASCII text, and cannot be longer than 2^32 bytes.",
	"bytes":    "May contain any arbitrary sequence of bytes no longer than 2^32 bytes.",
	"bool":     "A boolean value, true or false.",
}

var wellKnownDocs = map[string]string{
	"Any":               "Any contains an arbitrary serialized message along with a URL that describes the type of the serialized message.",
	"Api":               "Api is a light-weight descriptor for a protocol buffer service.",
	"BoolValue":         "Wrapper message for bool",
	"BytesValue":        "Wrapper message for bytes",
	"DoubleValue":       "Wrapper message for double",
	"Duration":          `A Duration represents a signed, fixed-length span of time represented as a count of seconds and fractions of seconds at nanosecond resolution. It is independent of any calendar and concepts like "day" or "month". It is related to Timestamp in that the difference between two Timestamp values is a Duration and it can be added or subtracted from a Timestamp. Range is approximately +-10,000 years`,
	"Empty":             "A generic empty message that you can re-use to avoid defining duplicated empty messages in your APIs. A typical example is to use it as the request or the response type of an API method",
	"Enum":              "Enum type definition",
	"EnumValue":         "Enum value definition",
	"Field":             "A single field of a message type",
	"Field.Cardinality": "Whether a field is optional, required, or repeated",
	"Field.Kind":        "Basic field types",
	"FieldMask":         "FieldMask represents a set of symbolic field paths",
	"FloatValue":        "Wrapper message for float",
	"Int32Value":        "Wrapper message for int32",
	"Int64Value":        "Wrapper message for int64",
	"ListValue":         "ListValue is a wrapper around a repeated field of values",
	"Method":            "Method represents a method of an api",
	"Mixin":             "Declares an API to be included in this API",
	"NullValue":         "NullValue is a singleton enumeration to represent the null value for the Value type union",
	"Option":            "A protocol buffer option, which can be attached to a message, field, enumeration, etc",
	"SourceContext":     "SourceContext represents information about the source of a protobuf element, like the file in which it is defined",
	"StringValue":       "Wrapper message for string",
	"Struct":            "Struct represents a structured data value, consisting of fields which map to dynamically typed values",
	"Syntax":            "The syntax in which a protocol buffer element is defined",
	"Timestamp":         `A Timestamp represents a point in time independent of any time zone or calendar, represented as seconds and fractions of seconds at nanosecond resolution in UTC Epoch time. It is encoded using the Proleptic Gregorian Calendar which extends the Gregorian calendar backwards to year one. It is encoded assuming all minutes are 60 seconds long, i.e. leap seconds are "smeared" so that no leap second table is needed for interpretation. Range is from 0001-01-01T00:00:00Z to 9999-12-31T23:59:59.999999999Z. By restricting to that range, we ensure that we can convert to and from RFC 3339 date strings`,
	"Type":              "A protocol buffer message type",
	"UInt32Value":       "Wrapper message for uint32",
	"UInt64Value":       "Wrapper message for uint64",
	"Value":             "Value represents a dynamically typed value which can be either null, a number, a string, a boolean, a recursive struct value, or a list of values. A producer of value is expected to set one of that variants, absence of any variant indicates an error",
}
