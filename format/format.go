// Package format defines the closed set of fragment formats recognized by
// the fragmenta library, together with the fixed resolution priority order.
package format

// Format represents a recognized embedded-data format.
type Format int

const (
	// Unknown indicates an unrecognized format tag.
	Unknown Format = iota
	// JSONLD indicates JSON-LD embedded in a script tag.
	JSONLD
	// JSON indicates a strictly parseable JSON object.
	JSON
	// MalformedJSON indicates a JSON-shaped region that fails strict parsing.
	MalformedJSON
	// HTMLTable indicates an HTML table element.
	HTMLTable
	// HTML indicates a generic block-level HTML region.
	HTML
	// YAMLFrontmatter indicates a ----delimited YAML frontmatter block.
	YAMLFrontmatter
	// CSV indicates delimiter-separated rows with a header row.
	CSV
	// CSVNoHeader indicates delimiter-separated rows without a header row.
	CSVNoHeader
	// KeyValue indicates a run of key: value or key = value lines.
	KeyValue
	// JSObject indicates a script-style object-literal assignment.
	JSObject
	// SQL indicates an SQL statement.
	SQL
	// RawText indicates residual prose claimed by no other detector.
	RawText
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSONLD:
		return "JSON_LD"
	case JSON:
		return "JSON"
	case MalformedJSON:
		return "MALFORMED_JSON"
	case HTMLTable:
		return "HTML_TABLE"
	case HTML:
		return "HTML"
	case YAMLFrontmatter:
		return "YAML_FRONTMATTER"
	case CSV:
		return "CSV"
	case CSVNoHeader:
		return "CSV_NO_HEADER"
	case KeyValue:
		return "KEY_VALUE"
	case JSObject:
		return "JS_OBJECT"
	case SQL:
		return "SQL"
	case RawText:
		return "RAW_TEXT"
	default:
		return "Unknown"
	}
}

// Priority returns the resolution rank of the format. Lower values win when
// two detections claim overlapping text. Unrecognized formats rank below
// RawText rather than being rejected, so priority is a total function.
func (f Format) Priority() int {
	switch f {
	case JSONLD:
		return 0
	case JSON:
		return 1
	case MalformedJSON:
		return 2
	case HTMLTable:
		return 3
	case HTML:
		return 4
	case YAMLFrontmatter:
		return 5
	case CSV:
		return 6
	case CSVNoHeader:
		return 7
	case KeyValue:
		return 8
	case JSObject:
		return 9
	case SQL:
		return 10
	case RawText:
		return 11
	default:
		return 12
	}
}

// All lists every recognized format in priority order.
func All() []Format {
	return []Format{
		JSONLD, JSON, MalformedJSON, HTMLTable, HTML, YAMLFrontmatter,
		CSV, CSVNoHeader, KeyValue, JSObject, SQL, RawText,
	}
}
