// File: utils/form_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sufra/config"
	"sufra/models"

	"github.com/go-redis/redis/v8"
)

const FormSessionPrefix = "formSession:"

// FormSession is the server-side state of one wizard run: the form snapshot,
// the wizard position and the editing language. One session is owned by one
// client at a time; there is no cross-session coordination.
type FormSession struct {
	SessionID      string          `json:"sessionId"`
	BranchID       string          `json:"branchId,omitempty"` // set when editing an existing branch
	ActiveLanguage string          `json:"activeLanguage"`
	CurrentStep    int             `json:"currentStep"`
	Form           models.FormData `json:"form"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

func formSessionTTL() time.Duration {
	minutes := config.AppConfig.FormSessionTTLMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

// SaveFormSession saves the form session in Redis with a TTL.
func SaveFormSession(client *redis.Client, session *FormSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal form session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, FormSessionPrefix+session.SessionID, data, formSessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to save form session: %w", err)
	}
	return nil
}

// GetFormSession retrieves a form session from Redis.
func GetFormSession(client *redis.Client, sessionID string) (*FormSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, FormSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session FormSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal form session: %w", err)
	}
	return &session, nil
}

// DeleteFormSession removes a form session from Redis.
func DeleteFormSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, FormSessionPrefix+sessionID).Err()
}
