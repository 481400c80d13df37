package report

// Severity rules:
// - BLOCK when extracted output was lost or the stream was cut short
// - WARN for files that produced less than expected
// - INFO for normal results

const (
	SeverityInfo  = "INFO"
	SeverityWarn  = "WARN"
	SeverityBlock = "BLOCK"
)

// Status values of a FileReport.
const (
	StatusOK    = "OK"
	StatusWarn  = "WARN"
	StatusError = "ERROR"
)

// Issue kinds:
// "blocks_extracted", "no_blocks", "candidate_truncated", "candidate_oversized",
// "candidates_rejected", "stream_error", "sink_failure"
func SeverityForKind(kind string) string {
	switch kind {
	case "stream_error", "sink_failure":
		return SeverityBlock
	case "no_blocks", "candidate_truncated", "candidate_oversized":
		return SeverityWarn
	case "blocks_extracted", "candidates_rejected":
		return SeverityInfo
	default:
		return SeverityInfo
	}
}

// MessageForKind returns a concise message for the given issue kind.
func MessageForKind(kind string) string {
	switch kind {
	case "blocks_extracted":
		return "schema blocks extracted"
	case "no_blocks":
		return "no schema blocks found"
	case "candidate_truncated":
		return "schema candidate still open at end of stream"
	case "candidate_oversized":
		return "schema candidate dropped for exceeding scan.maxCandidateBytes"
	case "candidates_rejected":
		return "start markers without a confirmed schema"
	case "stream_error":
		return "reading the file failed"
	case "sink_failure":
		return "storing a schema block failed"
	default:
		return ""
	}
}

func rank(severity string) int {
	switch severity {
	case SeverityBlock:
		return 2
	case SeverityWarn:
		return 1
	default:
		return 0
	}
}
