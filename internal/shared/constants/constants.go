package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderXSignature  = "X-Signature"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// SignaturePrefix is stripped from the X-Signature header when present.
	SignaturePrefix = "sha256="

	// Database table names
	TableConfigs      = "clickup_configs"
	TableTaskMaps     = "clickup_task_maps"
	TableCommentMaps  = "clickup_comment_maps"
	TableTickets      = "tickets"
	TableComments     = "ticket_comments"
	TableStatusLabels = "project_status_labels"
	TableProjects     = "projects"
)
