package domain

// IngestResult reports what one ingest call did.
type IngestResult struct {
	PostID    int64
	Ingested  bool // false when the post_uid was already stored
	Listing   bool // a listing row was attached
	LinksMade int  // duplicate links created
}
