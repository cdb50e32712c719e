package media

import "errors"

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")

	ErrMediaNotFound   = errors.New("media not found")
	ErrNotFamilyMedia  = errors.New("media does not belong to this family")
	ErrMediaNotReady   = errors.New("media upload is not finalised yet")
	ErrUnsupportedMime = errors.New("unsupported mime type")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
)
