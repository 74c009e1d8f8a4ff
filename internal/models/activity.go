package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityEntry is one audit record of an account action.
type ActivityEntry struct {
	ID        primitive.ObjectID     `json:"_id,omitempty" bson:"_id,omitempty"`
	ActorID   primitive.ObjectID     `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Action    string                 `json:"action" bson:"action"`
	Detail    string                 `json:"detail" bson:"detail"`
	IPAddress string                 `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	Timestamp time.Time              `json:"timestamp" bson:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
}
