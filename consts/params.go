package consts

// DefaultDelimiter matches a single forward or back slash.
const DefaultDelimiter = `[/\\]`

// Placeholder type names as written in templates, e.g. {INT:id}.
// Matching is exact and case-sensitive.
const (
	TypeString  = "STRING"
	TypeInt     = "INT"
	TypeBoolean = "BOOLEAN"
)

const (
	RuneBraceOpen  = '{'
	RuneBraceClose = '}'
	RuneColon      = ':'
)

// Boolean spellings accepted for BOOLEAN placeholders.
// Input is lowercased before lookup.
var (
	BoolTrueWords  = []string{"true", "1", "yes"}
	BoolFalseWords = []string{"false", "0", "no"}
)
