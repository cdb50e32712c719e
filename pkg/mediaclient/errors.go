package mediaclient

import "errors"

var (
	ErrAuth       = errors.New("mediaclient: no valid identity token")
	ErrPresign    = errors.New("mediaclient: authority rejected the request")
	ErrUpload     = errors.New("mediaclient: storage rejected the upload")
	ErrNetwork    = errors.New("mediaclient: network failure")
	ErrAborted    = errors.New("mediaclient: aborted")
	ErrNotFound   = errors.New("mediaclient: object not found")
	ErrPermission = errors.New("mediaclient: permission denied")
)
