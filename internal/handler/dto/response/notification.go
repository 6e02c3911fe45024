package response

import (
	"time"

	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	RelatedID uuid.UUID  `json:"relatedId"`
	IsRead    bool       `json:"isRead"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromNotification(rm *readmodel.Notification) *NotificationResponse {
	var resp NotificationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromNotifications(rms []*readmodel.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromNotification(rm)
	}
	return out
}
