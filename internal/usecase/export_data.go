package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
)

// ExportDataInput contains the parameters for exporting all data.
type ExportDataInput struct {
	// Empty for now; the export always covers both collections.
}

// ExportDataOutput contains the serialized export document and its
// deterministic file name. The caller decides where to write it.
type ExportDataOutput struct {
	Document domain.ExportDocument
	Content  []byte // Indented JSON serialization of Document
	FileName string // e.g. "pmdash-export-2026-08-31.json"
}

// ExportData is the use case for producing a full data export.
type ExportData struct {
	snapshots domain.Snapshotter
	clock     domain.Clock
	logger    domain.Logger
}

// NewExportData creates a new ExportData use case.
func NewExportData(snapshots domain.Snapshotter, clock domain.Clock, logger domain.Logger) *ExportData {
	return &ExportData{
		snapshots: snapshots,
		clock:     clock,
		logger:    logger,
	}
}

// Execute serializes both collections with an export timestamp.
func (uc *ExportData) Execute(_ context.Context, _ ExportDataInput) (*ExportDataOutput, error) {
	snapshot := uc.snapshots.Snapshot()
	now := uc.clock.Now()

	doc := domain.ExportDocument{
		Projects:   snapshot.Projects,
		Tasks:      snapshot.Tasks,
		ExportDate: now,
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("export", fmt.Sprintf("exported %d project(s), %d task(s)", len(doc.Projects), len(doc.Tasks)))
	}

	return &ExportDataOutput{
		Document: doc,
		Content:  content,
		FileName: domain.ExportFileName(now),
	}, nil
}
