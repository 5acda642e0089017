package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/filestore"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
)

type FileHandler struct {
	files  *filestore.Store
	logger *zap.Logger
}

func NewFileHandler(files *filestore.Store, logger *zap.Logger) *FileHandler {
	return &FileHandler{files: files, logger: logger}
}

type fileResponse struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	FilePath string `json:"filePath"`
}

func mapFile(meta *model.FileMetadata) fileResponse {
	return fileResponse{
		ID:       meta.ID,
		Filename: meta.Filename,
		FilePath: meta.FilePath,
	}
}

func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	meta, err := h.files.Upload(c.Request.Context(), content, fileHeader.Filename)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, mapFile(meta))
}

func (h *FileHandler) Download(c *gin.Context) {
	filename := c.Param("filename")
	meta, err := h.files.Download(c.Request.Context(), filename)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.FileAttachment(meta.FilePath, meta.Filename)
}
