package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"solvenow/services/extractor"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	extractor extractor.Extractor
	uploadDir string
	maxBytes  int64
}

func NewUploadHandler(ext extractor.Extractor, uploadDir string, maxUploadMB int) *UploadHandler {
	return &UploadHandler{
		extractor: ext,
		uploadDir: uploadDir,
		maxBytes:  int64(maxUploadMB) << 20,
	}
}

// ProcessPDF stores the uploaded file and returns extraction metadata. Only
// PDFs are accepted; the check happens before any extraction work.
func (h *UploadHandler) ProcessPDF(c *gin.Context) {
	file, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded."})
		return
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed!"})
		return
	}
	if contentType := file.Header.Get("Content-Type"); contentType != "" && contentType != "application/pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed!"})
		return
	}
	if file.Size > h.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large."})
		return
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	path := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		log.Printf("Upload save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file."})
		return
	}

	result, err := h.extractor.Extract(path)
	if err != nil {
		log.Printf("PDF processing error for %s: %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process PDF."})
		return
	}

	preview := result.Text
	if len(preview) > 200 {
		preview = preview[:200]
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "File processed successfully",
		"filename":     filename,
		"originalName": file.Filename,
		"pageCount":    result.PageCount,
		"textLength":   len(result.Text),
		"preview":      preview + "...",
	})
}
