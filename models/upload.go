package models

import "io"

// FileUpload describes one file destined for a multipart upload endpoint.
type FileUpload struct {
	// Field is the multipart field name. Defaults to "file" when empty.
	Field string

	// Name is the file name reported to the backend.
	Name string

	// ContentType is the MIME type of the file. Optional.
	ContentType string

	// Size is the total byte length of Reader's content. Required for
	// progress reporting; with a zero Size no progress events are emitted.
	Size int64

	// Reader supplies the file content.
	Reader io.Reader

	// Fields holds additional plain form fields sent with the file.
	Fields map[string]string
}

// UploadProgress is one push-style progress notification for an in-flight
// upload. Percent never decreases across the notifications of one upload;
// exactly one terminal event (Done or Aborted) closes the stream.
type UploadProgress struct {
	// Percent is the share of the payload transferred so far, 0-100.
	Percent int

	// Done marks the terminal event of a fully transferred payload.
	Done bool

	// Aborted marks the terminal event of a transport-level failure.
	Aborted bool
}
