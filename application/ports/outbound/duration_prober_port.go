package outbound

import "context"

type DurationProberPort interface {
	Duration(ctx context.Context, filePath string) (float64, error)
}
