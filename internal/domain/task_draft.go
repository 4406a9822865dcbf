package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from file input.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Title       string
	Description string
	Priority    Priority // Empty = use the configured default
	DueDate     string
}

// draftFrontmatter is the YAML header of one draft block.
type draftFrontmatter struct {
	Title       string `yaml:"title"`
	Priority    string `yaml:"priority"`
	Due         string `yaml:"due"`
	Description string `yaml:"description"`
}

// frontmatterKeys are the keys that mark the start of a new draft block.
var frontmatterKeys = []string{"title:", "priority:", "due:", "description:"}

// ParseTaskDrafts parses a markdown file containing one or more task definitions.
// Tasks are separated by frontmatter blocks starting with "---".
//
// Format:
//
//	---
//	title: Write report
//	priority: high
//	due: 2025-01-31
//	---
//	Body becomes the description.
//
//	---
//	title: Second task
//	---
//
// A description key in the frontmatter is used when the body is empty.
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	blocks := splitDraftBlocks(content)
	if len(blocks) == 0 {
		return nil, ErrNoTasksInFile
	}

	drafts := make([]TaskDraft, 0, len(blocks))
	for i, block := range blocks {
		draft, err := parseDraftBlock(block)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// draftBlock is the raw frontmatter and body of one draft.
type draftBlock struct {
	header []string
	body   []string
}

// splitDraftBlocks splits content into frontmatter/body pairs.
// A "---" line only opens a new block when the following line looks like a
// frontmatter key, so horizontal rules inside a description survive.
func splitDraftBlocks(content string) []draftBlock {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var blocks []draftBlock
	var cur *draftBlock
	inHeader := false

	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			switch {
			case cur != nil && inHeader:
				inHeader = false
				continue
			case i+1 < len(lines) && isFrontmatterKey(lines[i+1]):
				if cur != nil {
					blocks = append(blocks, *cur)
				}
				cur = &draftBlock{}
				inHeader = true
				continue
			}
		}
		if cur == nil {
			continue
		}
		if inHeader {
			cur.header = append(cur.header, line)
		} else {
			cur.body = append(cur.body, line)
		}
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks
}

// isFrontmatterKey checks if a line looks like a frontmatter key.
func isFrontmatterKey(line string) bool {
	line = strings.TrimSpace(line)
	for _, key := range frontmatterKeys {
		if strings.HasPrefix(line, key) {
			return true
		}
	}
	return false
}

// parseDraftBlock decodes the YAML header and body of a single block.
func parseDraftBlock(block draftBlock) (TaskDraft, error) {
	var fm draftFrontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(block.header, "\n")), &fm); err != nil {
		return TaskDraft{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		return TaskDraft{}, ErrEmptyTitle
	}

	var priority Priority
	if fm.Priority != "" {
		p, err := ParsePriority(fm.Priority)
		if err != nil {
			return TaskDraft{}, err
		}
		priority = p
	}

	description := strings.TrimSpace(strings.Join(block.body, "\n"))
	if description == "" {
		description = strings.TrimSpace(fm.Description)
	}

	return TaskDraft{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     strings.TrimSpace(fm.Due),
	}, nil
}
