package adapter

import (
	"context"
	"fmt"

	"github.com/academyhub/academy-client/models"
)

func (h *httpAPIClient) Upload(ctx context.Context, path string, upload models.FileUpload, onProgress func(models.UploadProgress)) (models.Envelope, error) {
	report := func(p models.UploadProgress) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	field := upload.Field
	if field == "" {
		field = "file"
	}

	body := newProgressReader(upload.Reader, upload.Size, func(percent int) {
		report(models.UploadProgress{Percent: percent})
	})

	req := h.authedRequest(ctx).
		SetMultipartField(field, upload.Name, upload.ContentType, body)
	if len(upload.Fields) > 0 {
		req.SetMultipartFormData(upload.Fields)
	}

	resp, err := req.Post(path)
	if err != nil {
		report(models.UploadProgress{Percent: body.Percent(), Aborted: true})
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	env, err := decode(resp)
	if err != nil {
		report(models.UploadProgress{Percent: body.Percent(), Aborted: true})
		return env, err
	}

	report(models.UploadProgress{Percent: 100, Done: true})
	return env, nil
}
