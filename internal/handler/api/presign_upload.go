package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/littlesteps/media-go/internal/logger"
	"github.com/littlesteps/media-go/internal/model"
	"github.com/littlesteps/media-go/internal/port"
	mediaSvc "github.com/littlesteps/media-go/internal/usecase/media"
	"github.com/littlesteps/media-go/internal/validation"
)

type PresignUploadRequest struct {
	FamilyID         string `json:"familyId" validate:"required,max=128"`
	BabyID           string `json:"babyId" validate:"required,max=128"`
	ContentType      string `json:"contentType" validate:"required,max=100"`
	FileSizeBytes    int64  `json:"fileSizeBytes" validate:"required,gt=0"`
	MediaType        string `json:"mediaType" validate:"required,oneof=photo video"`
	OriginalFilename string `json:"originalFilename,omitempty" validate:"omitempty,max=255"`
	UploadID         string `json:"uploadId,omitempty" validate:"omitempty,max=64"`
}

func PresignUploadHandler(svc port.UploadPresigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PresignUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		if !requireFamily(w, r, req.FamilyID) {
			return
		}

		in := port.PresignUploadInput{
			FamilyID:         req.FamilyID,
			BabyID:           req.BabyID,
			ContentType:      req.ContentType,
			FileSizeBytes:    req.FileSizeBytes,
			MediaType:        model.MediaType(req.MediaType),
			OriginalFilename: req.OriginalFilename,
			UploadID:         req.UploadID,
		}
		out, err := svc.PresignUpload(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, mediaSvc.ErrUnsupportedMime), errors.Is(err, mediaSvc.ErrFileTooLarge):
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not presign upload", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully presigned upload for object %q", out.ObjectKey)
	}
}
