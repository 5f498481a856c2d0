package http

import (
	"context"
	"encoding/json"

	"github.com/brayanmoyano53/dashboard/internal/services"
)

// ViewsServiceInterface defines the read operations on computed views
type ViewsServiceInterface interface {
	ListViews(ctx context.Context) ([]services.ViewSummary, error)
	GetView(ctx context.Context, name string) (*services.ViewTable, error)
	Boundaries(ctx context.Context) (json.RawMessage, error)
}
