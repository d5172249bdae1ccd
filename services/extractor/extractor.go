package extractor

// Result holds what could be pulled out of an uploaded document.
type Result struct {
	PageCount int
	Text      string
}

// Extractor converts a stored document into plain text and page metadata.
type Extractor interface {
	Extract(path string) (*Result, error)
}
