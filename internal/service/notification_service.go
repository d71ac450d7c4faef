package service

import (
	"encoding/json"
	"log"

	"arena/internal/models"
	"arena/internal/repository"
	"arena/internal/ws"
)

// NotificationService persists notifications and pushes them to connected
// clients over the event hub.
type NotificationService struct {
	repo *repository.NotificationRepository
	hub  *ws.Hub
}

func NewNotificationService(repo *repository.NotificationRepository, hub *ws.Hub) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

func (s *NotificationService) Notify(userID uint, notifType, title, body string, data map[string]interface{}) error {
	var dataJSON string
	if data != nil {
		b, _ := json.Marshal(data)
		dataJSON = string(b)
	}
	n := &models.Notification{
		UserID: userID,
		Type:   notifType,
		Title:  title,
		Body:   body,
		Data:   dataJSON,
	}
	if err := s.repo.Create(n); err != nil {
		log.Printf("[Notify] persist failed user=%d type=%s: %v", userID, notifType, err)
		return err
	}
	if s.hub != nil {
		s.hub.BroadcastToUser(userID, map[string]interface{}{
			"type":         "notification",
			"notification": n,
		})
	}
	return nil
}

// NotifyMany fans a notification out to multiple users.
func (s *NotificationService) NotifyMany(userIDs []uint, notifType, title, body string, data map[string]interface{}) {
	for _, id := range userIDs {
		_ = s.Notify(id, notifType, title, body, data)
	}
}
