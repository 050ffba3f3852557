package pagos

import (
	"errors"
	"io"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"CobranzaSaas/api"
	"CobranzaSaas/api/constants"
	"CobranzaSaas/internal/config"
)

// Handler: UploadPagos
// Accepts one or more spreadsheets under the multipart field "file" and
// ingests each as its own batch.
func UploadPagos(pgxPool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
			api.RespondWithError(w, http.StatusBadRequest, "Failed to parse multipart form")
			return
		}
		files := r.MultipartForm.File["file"]
		if len(files) == 0 {
			api.RespondWithError(w, http.StatusBadRequest, constants.ErrNoFilesUploaded)
			return
		}

		results := make([]*IngestResult, 0, len(files))
		totalAccepted := 0
		for _, fileHeader := range files {
			file, err := fileHeader.Open()
			if err != nil {
				api.RespondWithError(w, http.StatusBadRequest, "Failed to open file: "+fileHeader.Filename)
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				api.RespondWithError(w, http.StatusBadRequest, "Failed to read file: "+fileHeader.Filename)
				return
			}

			res, err := Ingest(ctx, pgxPool, data, fileHeader.Filename)
			if err != nil {
				api.RespondWithError(w, uploadErrorStatus(err), err.Error())
				return
			}
			totalAccepted += res.AcceptedCount
			results = append(results, res)
		}

		api.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"success":        true,
			"accepted_count": totalAccepted,
			"results":        results,
		})
	}
}

// uploadErrorStatus maps the structural ingest errors onto HTTP statuses.
func uploadErrorStatus(err error) int {
	var unsupported *UnsupportedFormatError
	var missing *MissingColumnsError
	var malformed *MalformedFileError
	if errors.As(err, &unsupported) || errors.As(err, &missing) || errors.As(err, &malformed) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
