package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docchat/platform"
	"docchat/service"
)

type ChatController struct{}

var chatService = service.ChatService{}

var historyService = service.HistoryService{}

func (ch ChatController) Chat(c *gin.Context) {
	var reqData struct {
		Question string `json:"question" binding:"required"`
	}

	if err := c.ShouldBindJSON(&reqData); err != nil {
		logger.Warnf("[%s] Invalid input, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid input"})
		return
	}

	userId := c.GetUint("UserId")
	if err := chatService.Chat(c, userId, reqData.Question); err != nil {
		// the service already answered; headers may be sent mid-stream
		logger.Warnf("[%s] Failed to chat: %s", c.GetString("requestId"), err)
		return
	}
}

func (ch ChatController) History(c *gin.Context) {
	userId := c.GetUint("UserId")

	messages, err := historyService.GetMessages(userId)
	if err != nil {
		logger.Warnf("[%s] Failed to fetch history: %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (ch ChatController) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		logger.Warnf("[%s] Invalid multipart form, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No files uploaded"})
		return
	}

	parts := make([]platform.UploadPart, 0, len(files))
	for _, fileHeader := range files {
		f, err := fileHeader.Open()
		if err != nil {
			logger.Warnf("[%s] open uploaded file %s error, %s", c.GetString("requestId"), fileHeader.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to read uploaded file"})
			return
		}
		defer f.Close()
		parts = append(parts, platform.UploadPart{Filename: fileHeader.Filename, Reader: f})
	}

	status, body, err := platform.RAG.Upload(c.Request.Context(), parts)
	if err != nil {
		logger.Warnf("[%s] upload to AI service error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadGateway, gin.H{"msg": "AI service unavailable"})
		return
	}

	// relay the upstream acknowledgment unmodified, success or not
	c.Data(status, "application/json", body)
}

func (ch ChatController) Healthz(c *gin.Context) {
	sqlDB, err := platform.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
