package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/littlesteps/media-go/internal/logger"
	"github.com/littlesteps/media-go/internal/port"
	mediaSvc "github.com/littlesteps/media-go/internal/usecase/media"
	"github.com/littlesteps/media-go/internal/validation"
)

type FinaliseUploadRequest struct {
	FamilyID  string `json:"familyId" validate:"required,max=128"`
	ObjectKey string `json:"objectKey" validate:"required,max=512"`
}

func FinaliseUploadHandler(svc port.UploadFinaliser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FinaliseUploadRequest
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

			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		if !requireFamily(w, r, req.FamilyID) {
			return
		}

		out, err := svc.FinaliseUpload(r.Context(), port.FinaliseUploadInput(req))
		if err != nil {
			switch {
			case errors.Is(err, mediaSvc.ErrMediaNotFound):
				WriteError(w, http.StatusNotFound, "Media not found", nil)
			case errors.Is(err, mediaSvc.ErrNotFamilyMedia):
				WriteError(w, http.StatusForbidden, "Media belongs to another family", nil)
			default:
				WriteError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Could not finalise upload: %v", err), err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully finalised upload of media #%s", out.ID)
	}
}
