package usecases

import (
	"context"

	"tasksync/internal/domain/clickup"
	"tasksync/internal/shared/logger"
)

// StatusResolver maps a ClickUp status change onto a ticket status id.
// Resolution is best effort: any storage failure degrades to "no status
// update" rather than failing the whole webhook.
type StatusResolver struct {
	tickets TicketStore
	logger  logger.Interface
}

func NewStatusResolver(tickets TicketStore, logger logger.Interface) *StatusResolver {
	return &StatusResolver{tickets: tickets, logger: logger}
}

// Resolve returns the matching status id, or nil when nothing matched.
// Labels are tried first (exact, then alphanumeric-normalized); the
// ClickUp status type is a coarser fallback mapped onto status buckets.
func (s *StatusResolver) Resolve(ctx context.Context, change clickup.StatusChange, projectID uint) *uint {
	if change.Empty() {
		return nil
	}

	var labels []StatusLabel
	labelsLoaded := false
	loadLabels := func() []StatusLabel {
		if labelsLoaded {
			return labels
		}
		labelsLoaded = true
		loaded, err := s.tickets.ListStatusLabels(ctx, projectID)
		if err != nil {
			s.logger.Warnw("failed to load status labels", "project_id", projectID, "error", err)
			return nil
		}
		labels = loaded
		return labels
	}

	if change.Label != "" {
		id, ok, err := s.tickets.ResolveStatusID(ctx, change.Label, projectID)
		if err != nil {
			s.logger.Warnw("status lookup failed", "label", change.Label, "error", err)
		} else if ok {
			return &id
		}

		normalized := clickup.NormalizeLabel(change.Label)
		if normalized != "" {
			for _, label := range loadLabels() {
				if clickup.NormalizeLabel(label.Name) == normalized {
					id := label.ID
					return &id
				}
			}
		}
	}

	if change.Type != "" {
		for _, bucket := range statusTypeBuckets(change.Type) {
			for _, label := range loadLabels() {
				if label.StatusType == bucket {
					id := label.ID
					return &id
				}
			}
		}
	}

	return nil
}

// statusTypeBuckets orders the status buckets to try for a ClickUp
// status type. Unknown types prefer the NEW bucket over INPROGRESS.
func statusTypeBuckets(statusType string) []string {
	switch statusType {
	case "closed", "done", "complete", "completed":
		return []string{"DONE"}
	case "in_progress", "inprogress", "progress":
		return []string{"INPROGRESS"}
	default:
		return []string{"NEW", "INPROGRESS"}
	}
}
