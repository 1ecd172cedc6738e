package controllers

import (
	"fmt"
	"net/http"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smontoya/kickstore-backend/api/responses"
	"github.com/smontoya/kickstore-backend/api/validators"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

// UploadSigner mints signed PUT URLs and derives public URLs.
type UploadSigner interface {
	SignUploadURL(objectPath, contentType string, expiry time.Duration) (string, error)
	PublicURL(objectPath string) string
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var filenameSanitizeRe = regexp.MustCompile(`[^a-z0-9._-]+`)

type presignRequest struct {
	Filename    string `json:"filename" validate:"required,max=200"`
	ContentType string `json:"contentType" validate:"required"`
}

type presignResponse struct {
	UploadURL  string `json:"uploadUrl"`
	ObjectPath string `json:"objectPath"`
	PublicURL  string `json:"publicUrl"`
	ExpiresIn  int    `json:"expiresIn"`
}

// UploadsPresign mints a signed PUT URL for one product image. Object paths
// are always server-generated; the client only picks the extension via its
// content type.
func UploadsPresign(signer UploadSigner, expiry time.Duration, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if signer == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "uploads unavailable"))
			return
		}

		var payload presignRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ext, ok := allowedImageTypes[strings.ToLower(payload.ContentType)]
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unsupported image content type").
					WithDetails(map[string]any{"contentType": payload.ContentType}))
			return
		}

		objectPath := fmt.Sprintf("products/%s_%s%s", uuid.NewString(), sanitizeFilename(payload.Filename), ext)

		uploadURL, err := signer.SignUploadURL(objectPath, payload.ContentType, expiry)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "signing upload url"))
			return
		}

		responses.WriteSuccess(w, presignResponse{
			UploadURL:  uploadURL,
			ObjectPath: objectPath,
			PublicURL:  signer.PublicURL(objectPath),
			ExpiresIn:  int(expiry.Seconds()),
		})
	}
}

func sanitizeFilename(filename string) string {
	base := strings.ToLower(path.Base(filename))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = filenameSanitizeRe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		return "image"
	}
	if len(base) > 60 {
		base = base[:60]
	}
	return base
}
