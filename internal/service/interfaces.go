package service

import (
	"context"

	"github.com/MKhiriev/go-qr-history/internal/display"
	"github.com/MKhiriev/go-qr-history/internal/render"
)

// QRService is the render-and-upload handler behind every front end.
type QRService interface {
	// Generate renders text into the display container and schedules the
	// upload of the result to the QR history endpoint.
	//
	// Blank text hides the container and returns an already finished
	// Completion; nothing is rendered or uploaded. Otherwise the container
	// is shown and cleared and the returned Completion fires once drawing
	// is over. Upload outcomes are logged and never returned to the caller.
	Generate(ctx context.Context, text string) *render.Completion

	// Container returns the display container Generate draws into.
	Container() *display.Container

	// Wait blocks until the latest scheduled upload has exited.
	Wait()

	// Stop cancels the in-flight upload, if any, and waits for it to exit.
	Stop()
}

// UploadJob runs at most one upload follow-up at a time. Submitting a new
// task supersedes the running one.
type UploadJob interface {
	// Submit cancels the running task and starts task once the previous one
	// has exited. task receives a context cancelled on supersede or Stop.
	Submit(ctx context.Context, task func(ctx context.Context))

	// Wait blocks until the latest submitted task has exited.
	Wait()

	// Stop cancels the running task and blocks until it has exited. Safe to
	// call when nothing was submitted.
	Stop()
}

// AppInfoService reports the running application's version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
