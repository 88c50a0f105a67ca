package tools

import (
	"fmt"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
)

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	TextContentType  = "text/plain; charset=utf-8"
	DBContentType    = "application/octet-stream"
)

func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SendBytes streams an in-memory file to the client as an attachment.
func SendBytes(c *gin.Context, data []byte, displayName, contentType string) {
	escaped := url.QueryEscape(displayName)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped))
	c.Data(200, contentType, data)
}

// SendStoredFile streams a file from disk to the client as an attachment.
func SendStoredFile(c *gin.Context, path, displayName, contentType string) {
	escaped := url.QueryEscape(displayName)
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped))
	c.File(path)
}
