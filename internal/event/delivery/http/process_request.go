package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "event-announcer/pkg/errors"
)

// processCreateReq binds the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processPreviewReq binds the preview body and resolves its start time.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, time.Time, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := h.parseStart(req.Start)
	if err != nil {
		return req, time.Time{}, err
	}

	if req.Count <= 0 {
		req.Count = defaultPreviewCount
	}
	if req.Count > maxPreviewCount {
		req.Count = maxPreviewCount
	}
	return req, start, nil
}

func (h *handler) parseStart(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04", dateLayout} {
		if t, err := time.ParseInLocation(layout, raw, h.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, pkgErrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid start %q", raw))
}
