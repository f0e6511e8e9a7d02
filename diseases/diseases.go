package diseases

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"krishi/advisory"
	"krishi/models"
	"krishi/mq"
	"krishi/store"
	"krishi/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const (
	maxUploadBytes = 10 << 20 // 10MB multipart limit
	maxImageEdge   = 1024     // longest edge sent to the vision model
	uploadDir      = "./static/uploads/diseases"
)

type Handler struct {
	store    store.Storage
	advisory advisory.Client
}

func NewHandler(s store.Storage, a advisory.Client) *Handler {
	return &Handler{store: s, advisory: a}
}

type detectResponse struct {
	advisory.DiseaseDiagnosis
	ID string `json:"id,omitempty"`
}

// DetectDisease serves POST /api/detect-disease. Multipart field "image"
// is mandatory; "userId" is optional and persists the diagnosis as a
// report for later history lookups.
func (h *Handler) DetectDisease(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		utils.RespondWithError(w, http.StatusBadRequest, "Only image uploads are accepted")
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No image file provided")
		return
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid image file")
		return
	}

	// Downscale before shipping to the model; full-resolution photos only
	// slow the call down.
	bounds := img.Bounds()
	if bounds.Dx() > maxImageEdge || bounds.Dy() > maxImageEdge {
		img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		log.Printf("diseases: encode failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to detect disease")
		return
	}

	imagePath := saveUpload(raw, header.Filename)

	diagnosis, err := h.advisory.DiagnoseCropImage(r.Context(), base64.StdEncoding.EncodeToString(buf.Bytes()))
	if err != nil {
		log.Printf("diseases: diagnosis failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to detect disease")
		return
	}

	resp := detectResponse{DiseaseDiagnosis: diagnosis}

	if userID := r.FormValue("userId"); userID != "" {
		report, err := h.store.CreateCropDiseaseReport(r.Context(), models.CropDiseaseReport{
			UserID:            userID,
			ImagePath:         imagePath,
			DiseaseName:       diagnosis.DiseaseName,
			Confidence:        diagnosis.Confidence,
			OrganicSolutions:  diagnosis.OrganicSolutions,
			ChemicalSolutions: diagnosis.ChemicalSolutions,
		})
		if err != nil {
			log.Printf("diseases: persist failed: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to detect disease")
			return
		}
		resp.ID = report.ID
		mq.Emit("disease-report-created", mq.Event{EntityType: "disease-report", Method: "POST", EntityID: report.ID, UserID: userID})
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetUserDiseases serves GET /api/user/:userId/diseases.
func (h *Handler) GetUserDiseases(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reports, err := h.store.GetCropDiseaseReportsByUser(r.Context(), ps.ByName("userId"))
	if err != nil {
		log.Printf("diseases: history lookup failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user disease history")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reports)
}

// saveUpload keeps the original bytes on disk for the report's imagePath.
// Best effort: a failed write still yields a usable diagnosis.
func saveUpload(raw []byte, originalName string) string {
	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(originalName))
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		log.Printf("diseases: mkdir failed: %v", err)
		return "uploads/diseases/" + filename
	}
	if err := os.WriteFile(filepath.Join(uploadDir, filename), raw, 0o644); err != nil {
		log.Printf("diseases: save failed: %v", err)
	}
	return "uploads/diseases/" + filename
}
