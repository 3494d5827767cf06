package clickup

import (
	"strings"
	"time"
)

// Comment is the normalized comment sub-record of a payload.
type Comment struct {
	ID       string
	Text     string
	ParentID string
	Date     time.Time
}

// commentShapeKeys mark an object as comment-shaped.
var commentShapeKeys = []string{"comment_text", "text", "comment", "comment_text_rich"}

// commentIDKeys is the candidate order for the comment identifier.
var commentIDKeys = []string{"id", "comment_id", "commentId"}

// commentTextKeys is the candidate order for the comment body;
// comment_text_rich is the last resort.
var commentTextKeys = []string{"comment_text", "text", "comment", "text_content", "content"}

func isCommentShaped(p Payload) bool {
	for _, k := range commentShapeKeys {
		if p.Has(k) {
			return true
		}
	}
	return false
}

// ExtractComment locates and normalizes the comment sub-record of a
// payload, trying payload.comment, payload.payload.comment, the
// alternate payload itself, payload.data.comment, and comment history
// entries, in that order. Returns nil when no comment-shaped candidate
// exists.
func ExtractComment(p Payload) *Comment {
	candidate := findCommentPayload(p)
	if candidate == nil {
		return nil
	}
	return normalizeComment(candidate)
}

// CommentHistoryItems returns the comment objects nested inside
// comment-field history entries. ClickUp sometimes reports comment
// changes inside task update payloads rather than dedicated comment
// events.
func CommentHistoryItems(items []Payload) []*Comment {
	var out []*Comment
	for _, item := range items {
		if item.String("field") != "comment" {
			continue
		}
		comment := item.Map("comment")
		if comment == nil {
			continue
		}
		out = append(out, normalizeComment(comment))
	}
	return out
}

func findCommentPayload(p Payload) Payload {
	var candidates []Payload
	if c := p.Map("comment"); c != nil {
		candidates = append(candidates, c)
	}
	if alt := p.Map("payload"); alt != nil {
		if c := alt.Map("comment"); c != nil {
			candidates = append(candidates, c)
		}
		if isCommentShaped(alt) {
			candidates = append(candidates, alt)
		}
	}
	if c := p.Map("data").Map("comment"); c != nil {
		candidates = append(candidates, c)
	}
	for _, item := range p.HistoryItems() {
		if item.String("field") == "comment" {
			if c := item.Map("comment"); c != nil {
				candidates = append(candidates, c)
			}
		}
	}

	for _, c := range candidates {
		if isCommentShaped(c) {
			return c
		}
	}
	return nil
}

func normalizeComment(comment Payload) *Comment {
	var id string
	for _, key := range commentIDKeys {
		if id = comment.String(key); id != "" {
			break
		}
	}

	var text string
	for _, key := range commentTextKeys {
		if text = comment.String(key); text != "" {
			break
		}
	}
	if text == "" {
		text = comment.String("comment_text_rich")
	}

	var parentID string
	for _, key := range parentKeys {
		if !comment.Has(key) {
			continue
		}
		if nested := comment.Map(key); nested != nil {
			if parentID = nested.String("id"); parentID != "" {
				break
			}
			continue
		}
		if parentID = comment.String(key); parentID != "" {
			break
		}
	}

	date, ok := comment["date"]
	if !ok {
		date = comment["created_at"]
	}

	return &Comment{
		ID:       strings.TrimSpace(id),
		Text:     strings.TrimSpace(text),
		ParentID: strings.TrimSpace(parentID),
		Date:     NormalizeTimestamp(date),
	}
}
