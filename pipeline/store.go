package pipeline

import "product-scraper/internal/types"

// ResultStore owns the per-URL result records for one pipeline run. The
// orchestrator creates every record before its URL is processed; the
// processor mutates records in place; the report pass reads them after all
// processing completes. Insertion order is preserved for the report rows.
type ResultStore struct {
	records map[string]*types.ResultRecord
	order   []string
}

// NewResultStore returns an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{
		records: make(map[string]*types.ResultRecord),
	}
}

// Create registers a record for url with the default report fields and
// returns it. Creating the same URL twice returns the existing record.
func (s *ResultStore) Create(url, siteName, folderName string) *types.ResultRecord {
	if rec, ok := s.records[url]; ok {
		return rec
	}
	rec := types.NewResultRecord(url, siteName, folderName)
	s.records[url] = rec
	s.order = append(s.order, url)
	return rec
}

// RecordFor returns the record for url, or nil if none was created.
func (s *ResultStore) RecordFor(url string) *types.ResultRecord {
	return s.records[url]
}

// Len returns the number of records in the store.
func (s *ResultStore) Len() int {
	return len(s.order)
}

// All returns the records in insertion order.
func (s *ResultStore) All() []*types.ResultRecord {
	out := make([]*types.ResultRecord, 0, len(s.order))
	for _, url := range s.order {
		out = append(out, s.records[url])
	}
	return out
}

// BySite groups the records by vendor name, preserving insertion order
// within each group.
func (s *ResultStore) BySite() map[string][]*types.ResultRecord {
	groups := make(map[string][]*types.ResultRecord)
	for _, url := range s.order {
		rec := s.records[url]
		groups[rec.Vendor] = append(groups[rec.Vendor], rec)
	}
	return groups
}
