package server

import (
	"bytes"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/output"
)

var errWorkbookNotFound = stderrors.New("workbook not found")

// multipartOverhead is allowed on top of MaxFileSize for form framing.
const multipartOverhead = 1 << 20

type uploadResponse struct {
	ID uuid.UUID `json:"id"`
	output.SheetListing
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "workbooks": s.store.Len()})
}

func (s *Server) handleUpload(c *gin.Context) {
	limit := s.cfg.Limits.MaxFileSize
	if limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var maxBytes *http.MaxBytesError
		if stderrors.As(err, &maxBytes) {
			s.writeError(c, err)
			return
		}
		s.writeError(c, errors.Wrap(errors.KindConfig, err, "missing multipart field \"file\""))
		return
	}
	if limit > 0 && fh.Size > limit {
		s.writeError(c, errors.SizeLimit("file size %d exceeds limit of %d bytes", fh.Size, limit))
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer f.Close()

	wb, err := sheetcard.Load(c.Request.Context(), f, sheetcard.Options{
		BookName: fh.Filename,
		Limits:   s.cfg.LoadLimits(),
	})
	if err != nil {
		s.log.Warn("upload %q rejected: %v", fh.Filename, err)
		s.writeError(c, err)
		return
	}
	for _, sh := range wb.Sheets {
		if len(sh.SkippedMerges) > 0 {
			s.log.Warn("%s/%s: skipped %d overlapping or out-of-range merges", wb.BookName, sh.Name, len(sh.SkippedMerges))
		}
	}

	id := s.store.Put(wb)
	s.log.Info("stored workbook %s (%s, %d sheets)", id, wb.BookName, len(wb.Sheets))
	c.JSON(http.StatusCreated, uploadResponse{ID: id, SheetListing: output.Listing(wb)})
}

func (s *Server) lookup(c *gin.Context) (uuid.UUID, *models.Workbook, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		s.writeError(c, errWorkbookNotFound)
		return uuid.Nil, nil, false
	}
	wb, ok := s.store.Get(id)
	if !ok {
		s.writeError(c, errWorkbookNotFound)
		return uuid.Nil, nil, false
	}
	return id, wb, true
}

func (s *Server) handleGetWorkbook(c *gin.Context) {
	id, wb, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, uploadResponse{ID: id, SheetListing: output.Listing(wb)})
}

func (s *Server) handleDeleteWorkbook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || !s.store.Delete(id) {
		s.writeError(c, errWorkbookNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleViewSheet(c *gin.Context) {
	_, wb, ok := s.lookup(c)
	if !ok {
		return
	}

	defaults := s.cfg.Defaults
	headerRows, err := strconv.Atoi(c.DefaultQuery("headerRows", strconv.Itoa(defaults.HeaderRows)))
	if err != nil {
		s.writeError(c, errors.Wrap(errors.KindConfig, err, "invalid headerRows"))
		return
	}
	if headerRows < 1 {
		s.writeError(c, errors.Config("header row count %d out of range: must be at least 1", headerRows))
		return
	}

	r, err := sheetcard.View(wb, c.Param("sheet"), sheetcard.ViewOptions{
		HeaderRows: headerRows,
		HeaderMode: c.DefaultQuery("headerMode", defaults.HeaderMode),
		Mode:       c.DefaultQuery("mode", defaults.ViewMode),
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		c.JSON(http.StatusOK, r)
	case "html":
		var buf bytes.Buffer
		if err := output.WriteHTML(&buf, r); err != nil {
			s.writeError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	default:
		s.writeError(c, errors.Config("invalid format: %s (must be json or html)", format))
	}
}
