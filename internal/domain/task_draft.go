package domain

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// TaskDraft represents a task to be created from file input.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Title       string   `yaml:"title"`
	Project     string   `yaml:"project"`
	Priority    Priority `yaml:"priority"`
	Status      Status   `yaml:"status"`
	Description string   `yaml:"-"`
}

// ParseTaskDrafts parses a markdown file containing one or more task
// definitions. Each task is a YAML frontmatter block followed by a
// markdown description body.
//
// Format:
//
//	---
//	title: Task Title
//	project: Alpha
//	priority: high
//	status: todo
//	---
//	Task description here.
//
//	---
//	title: Second Task
//	project: Alpha
//	---
//	Second task description.
//
// project refers to a project by name; priority defaults to medium and
// status to todo when omitted. Validation against live projects happens
// in the import use case, not here.
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	blocks := splitTaskBlocks(content)
	if len(blocks) == 0 {
		return nil, ErrNoTasksInFile
	}

	drafts := make([]TaskDraft, 0, len(blocks))
	for i, block := range blocks {
		draft, err := parseTaskBlock(block)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// parseTaskBlock parses one frontmatter block into a draft.
func parseTaskBlock(block string) (TaskDraft, error) {
	var draft TaskDraft
	body, err := frontmatter.Parse(strings.NewReader(block), &draft)
	if err != nil {
		return TaskDraft{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	draft.Description = strings.TrimSpace(string(body))

	if strings.TrimSpace(draft.Title) == "" {
		return TaskDraft{}, ErrEmptyTitle
	}
	if draft.Priority == "" {
		draft.Priority = PriorityMedium
	} else if !draft.Priority.IsValid() {
		return TaskDraft{}, ErrInvalidPriority
	}
	if draft.Status == "" {
		draft.Status = StatusTodo
	} else if !draft.Status.IsValid() {
		return TaskDraft{}, ErrInvalidStatus
	}

	return draft, nil
}

// splitTaskBlocks splits content into separate task blocks. A new
// block starts at a "---" line whose next line looks like a
// frontmatter key, so "---" separators inside descriptions survive.
func splitTaskBlocks(content string) []string {
	lines := strings.Split(content, "\n")

	var blocks []string
	var current []string
	inBlock := false
	inHeader := false

	for i, line := range lines {
		if strings.TrimRight(line, " \t") == "---" {
			switch {
			case !inBlock:
				inBlock = true
				inHeader = true
				current = []string{"---"}
			case inHeader:
				inHeader = false
				current = append(current, "---")
			case i+1 < len(lines) && isFrontmatterKey(lines[i+1]):
				blocks = append(blocks, strings.Join(current, "\n"))
				inHeader = true
				current = []string{"---"}
			default:
				current = append(current, line)
			}
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}

	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	return blocks
}

// isFrontmatterKey checks if a line looks like a frontmatter key.
func isFrontmatterKey(line string) bool {
	for _, key := range []string{"title:", "project:", "priority:", "status:"} {
		if strings.HasPrefix(line, key) {
			return true
		}
	}
	return false
}
