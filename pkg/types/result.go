package types

// BlockReport describes one extracted schema block of a file.
type BlockReport struct {
	Index  int      `yaml:"index" json:"index"`
	Offset int64    `yaml:"offset" json:"offset"`
	Size   int      `yaml:"size" json:"size"`
	Name   string   `yaml:"name" json:"name"`
	SHA256 string   `yaml:"sha256" json:"sha256"`
	Stored []string `yaml:"stored,omitempty" json:"stored,omitempty"`
	Errors []string `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// Candidates counts how schema candidates in a file were resolved.
type Candidates struct {
	Starts      int `yaml:"starts" json:"starts"`
	Confirmed   int `yaml:"confirmed" json:"confirmed"`
	Superseded  int `yaml:"superseded" json:"superseded"`
	Unconfirmed int `yaml:"unconfirmed" json:"unconfirmed"`
	Truncated   int `yaml:"truncated" json:"truncated"`
	Oversized   int `yaml:"oversized" json:"oversized"`
}

// Issue is a finding about a file, tagged with a severity.
type Issue struct {
	Kind     string `yaml:"kind" json:"kind"`
	Severity string `yaml:"severity" json:"severity"`
	Message  string `yaml:"message" json:"message"`
	Block    *int   `yaml:"block,omitempty" json:"block,omitempty"`
}

// FileReport is the outcome of extracting one franchise file.
type FileReport struct {
	RunID        string        `yaml:"runId" json:"runId"`
	Source       string        `yaml:"source" json:"source"`
	BytesScanned int64         `yaml:"bytesScanned" json:"bytesScanned"`
	Chunks       int           `yaml:"chunks" json:"chunks"`
	Candidates   Candidates    `yaml:"candidates" json:"candidates"`
	Blocks       []BlockReport `yaml:"blocks" json:"blocks"`
	StreamError  string        `yaml:"streamError,omitempty" json:"streamError,omitempty"`
	DurationMS   int64         `yaml:"durationMs" json:"durationMs"`
	Status       string        `yaml:"status" json:"status"`
	Issues       []Issue       `yaml:"issues,omitempty" json:"issues,omitempty"`
}
