package service

import (
	"docchat/model"
)

type HistoryService struct {
}

// GetMessages returns the user's transcript in insertion order, creating
// an empty history record on first access.
func (s *HistoryService) GetMessages(userId uint) ([]model.Message, error) {
	history, err := model.GetOrCreateHistory(userId)
	if err != nil {
		return nil, err
	}
	return model.GetMessages(history.ID)
}

// Append upserts the user's history record and appends one message to it.
func (s *HistoryService) Append(userId uint, role string, content string) (*model.Message, error) {
	history, err := model.GetOrCreateHistory(userId)
	if err != nil {
		return nil, err
	}
	return model.AppendMessage(history.ID, role, content)
}
