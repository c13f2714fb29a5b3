package domain

import "golang.org/x/xerrors"

type UploadStatus string

const (
	UploadStatusSuccess UploadStatus = "success"
	UploadStatusFailure UploadStatus = "failure"
)

// UploadResult is produced once per pin request. URL is set iff the upload
// succeeded, ErrorMessage iff it failed.
type UploadResult struct {
	Status       UploadStatus `json:"status"`
	URL          string       `json:"url,omitempty"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
}

func UploadSucceeded(url string) UploadResult {
	return UploadResult{Status: UploadStatusSuccess, URL: url}
}

func UploadFailed(err error) UploadResult {
	return UploadResult{Status: UploadStatusFailure, ErrorMessage: err.Error()}
}

func (r UploadResult) Ok() bool {
	return r.Status == UploadStatusSuccess
}

// Err returns nil for a successful upload
func (r UploadResult) Err() error {
	if r.Ok() {
		return nil
	}
	return xerrors.Errorf("%s: %w", r.ErrorMessage, ErrUploadFailed)
}
