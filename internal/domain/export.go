package domain

import (
	"fmt"
	"time"
)

// ExportDocument is the on-disk format of a full data export. The
// same document is accepted back by import; serialization is lossless
// for every entity field.
type ExportDocument struct {
	Projects   []Project `json:"projects"`
	Tasks      []Task    `json:"tasks"`
	ExportDate time.Time `json:"exportDate"`
}

// ExportFileName returns the deterministic export file name for the
// given day, e.g. "pmdash-export-2026-08-31.json".
func ExportFileName(now time.Time) string {
	return "pmdash-export-" + now.Format("2006-01-02") + ".json"
}

// Validate checks the document for internal consistency: unique IDs
// and tasks referencing projects contained in the document.
func (d *ExportDocument) Validate() error {
	projects := make(map[string]bool, len(d.Projects))
	for _, p := range d.Projects {
		if p.ID == "" {
			return fmt.Errorf("project %q: missing id", p.Name)
		}
		if projects[p.ID] {
			return fmt.Errorf("duplicate project id %q", p.ID)
		}
		projects[p.ID] = true
	}

	tasks := make(map[string]bool, len(d.Tasks))
	for _, t := range d.Tasks {
		if t.ID == "" {
			return fmt.Errorf("task %q: missing id", t.Title)
		}
		if tasks[t.ID] {
			return fmt.Errorf("duplicate task id %q", t.ID)
		}
		tasks[t.ID] = true
		if !projects[t.ProjectID] {
			return fmt.Errorf("task %q references unknown project %q", t.Title, t.ProjectID)
		}
	}

	return nil
}
