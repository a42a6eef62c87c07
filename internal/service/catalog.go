package service

import (
	"encoding/json"
	"fmt"
	"os"

	"soleus_remote/internal/protocol"
)

// CatalogService serves the full enumerated button set.
type CatalogService struct{}

func NewCatalogService() *CatalogService { return &CatalogService{} }

// Entries returns all catalog entries in their fixed enumeration order.
func (s *CatalogService) Entries() []protocol.CatalogEntry {
	return protocol.EnumerateAll()
}

// ExportJSON writes the catalog to path as an indented JSON array of
// {button_name, pronto_data} records and returns the entry count.
func (s *CatalogService) ExportJSON(path string) (int, error) {
	entries := protocol.EnumerateAll()
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write catalog to %q: %w", path, err)
	}
	return len(entries), nil
}
