package service

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docchat/model"
	"docchat/platform"
)

var logger = platform.Logger

var historyService = HistoryService{}

type ChatService struct {
}

// Chat persists the question, relays the upstream answer chunk by chunk
// and persists the full answer once the stream ends cleanly.
//
// A mid-stream upstream failure aborts the connection; chunks already
// relayed to the client are not reconciled with the history.
func (s *ChatService) Chat(c *gin.Context, userId uint, question string) error {
	w := c.Writer
	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Warnf("[%s] get Writer flusher error", c.GetString("requestId"))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "streaming unsupported"})
		return errors.New("get Writer flusher error")
	}

	if _, err := historyService.Append(userId, model.RoleUser, question); err != nil {
		logger.Warnf("[%s] create message for db error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to save message"})
		return err
	}

	body, err := platform.RAG.Query(c.Request.Context(), question)
	if err != nil {
		logger.Warnf("[%s] query AI service error, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadGateway, gin.H{"msg": "AI service unavailable"})
		return err
	}
	defer body.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	var full strings.Builder
	buf := make([]byte, 4096)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			full.Write(chunk)
			if _, werr := w.Write(chunk); werr != nil {
				logger.Warnf("[%s] write chunk to client error, %s", c.GetString("requestId"), werr)
				return werr
			}
			flusher.Flush()
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			// partial answer already sent to the client is dropped here
			logger.Warnf("[%s] stream error after %d bytes, assistant message not persisted, %s",
				c.GetString("requestId"), full.Len(), readErr)
			return readErr
		}
	}

	if _, err := historyService.Append(userId, model.RoleAssistant, full.String()); err != nil {
		logger.Warnf("[%s] create message content for db error, %s", c.GetString("requestId"), err)
		return err
	}
	return nil
}
