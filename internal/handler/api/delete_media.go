package api

import (
	"errors"
	"net/http"

	"github.com/littlesteps/media-go/internal/apictx"
	"github.com/littlesteps/media-go/internal/logger"
	"github.com/littlesteps/media-go/internal/port"
	mediaSvc "github.com/littlesteps/media-go/internal/usecase/media"
)

func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := apictx.MediaIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusInternalServerError, "ID missing from request context", nil)
			return
		}

		if err := svc.DeleteMedia(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, mediaSvc.ErrMediaNotFound):
				WriteError(w, http.StatusNotFound, "Media not found", nil)
			case errors.Is(err, mediaSvc.ErrNotFamilyMedia):
				WriteError(w, http.StatusForbidden, "Media belongs to another family", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not delete media", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted media #%s", id)
	}
}
