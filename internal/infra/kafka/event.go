package kafka

import (
	"encoding/json"
	"time"
)

// 活动事件类型
const (
	EventUserRegistered      = "user.registered"
	EventUserDeleted         = "user.deleted"
	EventVideoCreated        = "video.created"
	EventVideoUpdated        = "video.updated"
	EventVideoDeleted        = "video.deleted"
	EventCommentCreated      = "comment.created"
	EventLikeCreated         = "like.created"
	EventSubscriptionCreated = "subscription.created"
	EventViewRecorded        = "view.recorded"
)

// Event 活动事件消息体，Key 同时作为 Kafka 消息 key
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Key        string          `json:"key"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Decode 把 Payload 解到 dst
func (e *Event) Decode(dst any) error {
	return json.Unmarshal(e.Payload, dst)
}
