package controllers

import (
	"errors"

	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/storage"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Store *storage.ObjectStore
}

func NewUploadController(store *storage.ObjectStore) *UploadController {
	return &UploadController{Store: store}
}

var uploadEntities = map[string]bool{
	"products": true,
	"events":   true,
	"variants": true,
}

// POST /uploads/:entity — multipart "file". Size and type are rejected
// before any storage call.
func (uc *UploadController) Upload(c *gin.Context) {
	entityKind := c.Param("entity")
	if !uploadEntities[entityKind] {
		resp.BadRequest(c, "unknown upload entity")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if err := storage.ValidateImage(contentType, header.Size); err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrUnsupportedType) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	f, err := header.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	url, err := uc.Store.Upload(c.Request.Context(), entityKind, header.Filename, contentType, f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"url": url})
}
