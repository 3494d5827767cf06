package usecases

import "context"

// ProjectChecker verifies that a project id refers to a real project
// before a configuration is bound to it.
type ProjectChecker interface {
	ProjectExists(ctx context.Context, projectID uint) (bool, error)
}
