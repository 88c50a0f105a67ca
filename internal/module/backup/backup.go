package backup

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"controle-estagiarios/config"
	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/global/storage"
	"controle-estagiarios/tools"
)

// Download streams the SQLite database file. Only available with the
// sqlite driver; MySQL deployments back up through their own tooling.
func Download(c *gin.Context) {
	cfg := config.Get().DB
	if cfg.Driver != "" && cfg.Driver != "sqlite" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("backup por download disponível apenas com sqlite"))
		return
	}
	if !tools.FileExist(cfg.File) {
		log.Error("database file missing", "file", cfg.File)
		response.Fail(c, response.ErrNotFound.WithTips("arquivo de banco não encontrado"))
		return
	}

	database.Audit("BACKUP BAIXADO", fmt.Sprintf("Arquivo: %s", cfg.File))
	log.Info("backup downloaded", "file", cfg.File)
	tools.SendStoredFile(c, cfg.File, "backup_estagiarios.db", tools.DBContentType)
}

// UploadToS3 pushes a timestamped copy of the database file to the
// configured bucket and returns a presigned download URL.
func UploadToS3(c *gin.Context) {
	if !storage.Enabled() {
		response.Fail(c, response.ErrInvalidRequest.WithTips("bucket S3 não configurado"))
		return
	}
	cfg := config.Get().DB
	if cfg.Driver != "" && cfg.Driver != "sqlite" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("backup S3 disponível apenas com sqlite"))
		return
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		log.Error("failed to read database file", "error", err, "file", cfg.File)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	store, err := storage.New(c.Request.Context())
	if err != nil {
		log.Error("failed to build S3 client", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	key, err := store.Upload(c.Request.Context(),
		fmt.Sprintf("backup_estagiarios_%s.db", time.Now().Format("20060102_150405")), data)
	if err != nil {
		log.Error("failed to upload backup", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	url, err := store.PresignDownload(c.Request.Context(), key, time.Hour)
	if err != nil {
		log.Error("failed to presign backup URL", "error", err, "key", key)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	database.Audit("BACKUP ENVIADO AO S3", fmt.Sprintf("Chave: %s", key))
	log.Info("backup uploaded", "key", key, "bytes", len(data))

	response.Success(c, gin.H{
		"key":          key,
		"download_url": url,
		"expires_in":   int(time.Hour.Seconds()),
	})
}
