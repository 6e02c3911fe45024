package response

import (
	"time"

	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ActivityEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Action      string    `json:"action"`
	ActorID     uuid.UUID `json:"actorId"`
	TargetType  string    `json:"targetType"`
	TargetID    uuid.UUID `json:"targetId"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromActivityEntry(rm *readmodel.ActivityEntry) *ActivityEntryResponse {
	var resp ActivityEntryResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromActivityEntries(rms []*readmodel.ActivityEntry) []*ActivityEntryResponse {
	out := make([]*ActivityEntryResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromActivityEntry(rm)
	}
	return out
}
