package lead

import (
	"context"

	"bt2horizon/internal/domain"
)

// RequestWriter is the audit sink for submissions.
type RequestWriter interface {
	Create(ctx context.Context, req *domain.Request) error
}
