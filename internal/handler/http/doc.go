// Package http implements the browser front end of the QR generator.
//
// It serves a small page with a message box, a JSON endpoint that runs the
// render-and-upload handler, and the current QR image as PNG. Request
// tracing, access logging, compression and panic recovery are handled in
// this package before requests reach the service layer.
package http
