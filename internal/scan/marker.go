// Package scan locates embedded schema documents inside a franchise save file.
//
// A schema document starts at a binary record header (Start), must contain the
// table display-name fragment (Confirm) before its closing tag (End), and is
// copied out verbatim from the first byte of Start through the last byte of End.
// The file is consumed as a sequence of chunks whose boundaries never line up
// with the documents, so every marker may be split across any number of chunks.
package scan

// Marker is a literal byte sequence that delimits or confirms a schema document.
type Marker []byte

var (
	// Start is the record header shared by schema tables and unrelated tables.
	Start = Marker{0x00, 0x01, 0x00, 0x00, 0x09, 0x70}
	// Confirm appears in the display name of real schema tables.
	Confirm = Marker("e-Schemas")
	// End is the closing tag of a schema document.
	End = Marker("</FranTkData>")
)

// maxTail is the longest carry tail any marker can require.
var maxTail = max(len(Start), len(Confirm), len(End)) - 1

func (m Marker) String() string {
	switch {
	case string(m) == string(Start):
		return "start"
	case string(m) == string(Confirm):
		return "confirm"
	case string(m) == string(End):
		return "end"
	default:
		return "marker"
	}
}
