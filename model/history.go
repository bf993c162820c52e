package model

import (
	"fmt"
	"time"

	"docchat/platform"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatHistory is the per-user transcript record, exactly one per user.
type ChatHistory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserId    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is append-only. Only the chat proxy creates messages, user turn
// before the corresponding assistant turn.
type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	HistoryId uint      `gorm:"not null;index:idx_history_id_created_at" json:"-"`
	Role      string    `gorm:"type:varchar(64);not null" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_history_id_created_at" json:"created_at"`
}

// GetOrCreateHistory returns the user's history record, creating an empty
// one if absent.
func GetOrCreateHistory(userId uint) (*ChatHistory, error) {
	var history ChatHistory
	db := platform.DB
	err := db.Where(ChatHistory{UserId: userId}).FirstOrCreate(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get or create history: %w", err)
	}
	return &history, nil
}

func GetMessages(historyId uint) ([]Message, error) {
	messages := make([]Message, 0)
	db := platform.DB
	err := db.Where("history_id = ?", historyId).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return messages, nil
}

func AppendMessage(historyId uint, role string, content string) (*Message, error) {
	message := &Message{
		HistoryId: historyId,
		Role:      role,
		Content:   content,
	}
	db := platform.DB
	if err := db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return message, nil
}

func CountMessagesSince(cutoff time.Time) (int64, error) {
	var count int64
	db := platform.DB
	err := db.Model(&Message{}).Where("created_at >= ?", cutoff).Count(&count).Error
	return count, err
}
