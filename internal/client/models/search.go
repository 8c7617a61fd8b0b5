package models

import "time"

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

// SearchResult is one retrieved passage with its provenance.
type SearchResult struct {
	Content         string  `json:"content"`
	DocumentTitle   string  `json:"document_title"`
	PageNumber      int     `json:"page_number,omitempty"`
	ConfidenceScore float64 `json:"confidence_score"`
	SourceChunk     string  `json:"source_chunk"`
}

// SearchResponse is the answer produced for a search query together with
// the supporting passages.
type SearchResponse struct {
	Answer         string         `json:"answer"`
	Results        []SearchResult `json:"results"`
	TotalResults   int            `json:"total_results"`
	ProcessingTime float64        `json:"processing_time"`
}

// Document is one uploaded document as listed by GET /api/documents.
type Document struct {
	FileID     string    `json:"file_id"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}
