// Package vision holds the clients for the two external people-counting
// services: the crowd-density detector (primary estimate) and the generative
// scene model (secondary estimate). Both are opaque HTTP dependencies; the
// clients own the wire formats, timeouts and retry behavior so the core
// pipeline only sees integer counts and typed errors.
package vision

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=vision.go -destination=mocks/mock_vision.go -package=mocks

// ImageUpload carries image bytes already read into memory so the same
// payload can be replayed for the secondary estimate without re-reading
// the original upload stream.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type CrowdCounter interface {
	CountPeople(ctx context.Context, img ImageUpload) (int, error)
}

type SceneCounter interface {
	CountPeople(ctx context.Context, imageData []byte, capacity uint) (int, error)
}

var (
	ErrCrowdTimeout     = errors.New("crowd service timed out")
	ErrCrowdUnavailable = errors.New("cannot connect to crowd service")
)

// CrowdStatusError is a non-200 reply from the crowd service, carrying the
// upstream body so the caller can surface it.
type CrowdStatusError struct {
	StatusCode int
	Body       string
}

func (e *CrowdStatusError) Error() string {
	return fmt.Sprintf("crowd service returned status %d: %s", e.StatusCode, e.Body)
}
