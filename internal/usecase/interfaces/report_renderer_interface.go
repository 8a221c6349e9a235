package interfaces

import (
	"context"

	"costwatch/internal/domain/entities"
)

// IReportRenderer converts an assembled report payload into a downloadable
// artifact. The core supplies a fully computed payload and never inspects
// the returned bytes.

type IReportRenderer interface {
	Render(ctx context.Context, payload entities.ReportPayload) (artifact []byte, filename string, err error)
}
