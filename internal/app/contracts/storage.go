package contracts

import (
	"context"
	"time"
)

type ReportStorage interface {
	UploadJSON(ctx context.Context, objectName string, payload interface{}) error
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
}
