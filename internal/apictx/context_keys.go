package apictx

import (
	"context"

	"github.com/littlesteps/media-go/internal/uuid"
)

type ctxKey string

const (
	MediaIDKey      ctxKey = "mediaID"
	AuthUserIDKey   ctxKey = "authUserID"
	AuthFamiliesKey ctxKey = "authFamilies"
)

func MediaIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(MediaIDKey).(uuid.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthUserIDKey).(string)
	return sub, ok
}

func AuthFamiliesFromContext(ctx context.Context) ([]string, bool) {
	families, ok := ctx.Value(AuthFamiliesKey).([]string)
	return families, ok
}

// IsFamilyMember reports whether the authenticated caller belongs to the
// given family. Absent auth context means no membership.
func IsFamilyMember(ctx context.Context, familyID string) bool {
	families, ok := AuthFamiliesFromContext(ctx)
	if !ok {
		return false
	}
	for _, f := range families {
		if f == familyID {
			return true
		}
	}
	return false
}
