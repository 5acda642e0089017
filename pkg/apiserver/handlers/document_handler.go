package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/filestore"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
)

type DocumentHandler struct {
	documents *service.DocumentService
	files     *filestore.Store
	logger    *zap.Logger
}

func NewDocumentHandler(documents *service.DocumentService, files *filestore.Store, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{documents: documents, files: files, logger: logger}
}

type documentRequest struct {
	ReportID         *int64 `json:"reportId"`
	UploadedByUserID *int64 `json:"uploadedByUserId"`
	Filename         string `json:"filename"`
	FilePath         string `json:"filePath"`
}

type documentResponse struct {
	ID               int64  `json:"id"`
	ReportID         int64  `json:"reportId"`
	UploadedByUserID int64  `json:"uploadedByUserId"`
	Filename         string `json:"filename"`
	FilePath         string `json:"filePath"`
}

func mapDocument(doc *model.Document) documentResponse {
	return documentResponse{
		ID:               doc.ID,
		ReportID:         doc.ReportID,
		UploadedByUserID: doc.UploadedByUserID,
		Filename:         doc.Filename,
		FilePath:         doc.FilePath,
	}
}

func toDocumentInput(req documentRequest) service.DocumentInput {
	return service.DocumentInput{
		ReportID:         req.ReportID,
		UploadedByUserID: req.UploadedByUserID,
		Filename:         req.Filename,
		FilePath:         req.FilePath,
	}
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	doc, err := h.documents.Create(c.Request.Context(), toDocumentInput(req))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, mapDocument(doc))
}

func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	doc, err := h.documents.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapDocument(doc))
}

func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.documents.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response := make([]documentResponse, 0, len(docs))
	for i := range docs {
		response = append(response, mapDocument(&docs[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	doc, err := h.documents.Update(c.Request.Context(), id, toDocumentInput(req))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapDocument(doc))
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.documents.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Download resolves the document, strips the stored path down to its
// bare filename and proxies to the file store. The attachment carries
// the document's original filename.
func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	doc, err := h.documents.GetByID(c.Request.Context(), id)
	if err != nil {
		if service.KindOf(err) == service.KindNotFound {
			h.logger.Warn("document not found for download", zap.Int64("document_id", id))
		}
		respondError(c, h.logger, err)
		return
	}

	storedFilename := filepath.Base(doc.FilePath)
	meta, err := h.files.Download(c.Request.Context(), storedFilename)
	if err != nil {
		if service.KindOf(err) == service.KindNotFound {
			h.logger.Warn("stored blob missing for document",
				zap.Int64("document_id", id),
				zap.String("filename", storedFilename))
		}
		respondError(c, h.logger, err)
		return
	}

	c.FileAttachment(meta.FilePath, doc.Filename)
}
