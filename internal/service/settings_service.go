package service

import (
	"context"
	"fmt"

	"vlearn-backend/internal/event"
)

// SettingsService stores the per-user app settings blob and handles the
// destructive "clear learning data" action.
type SettingsService struct {
	cache     CacheStore
	progress  ProgressStore
	activity  ActivityStore
	results   QuizResultStore
	certs     CertificateStore
	publisher *event.EventPublisher
}

func NewSettingsService(
	cache CacheStore,
	progress ProgressStore,
	activity ActivityStore,
	results QuizResultStore,
	certs CertificateStore,
	publisher *event.EventPublisher,
) *SettingsService {
	return &SettingsService{
		cache:     cache,
		progress:  progress,
		activity:  activity,
		results:   results,
		certs:     certs,
		publisher: publisher,
	}
}

func settingsKey(userID string) string {
	return "settings:" + userID
}

// GetSettings returns the raw settings JSON, or "" when none were saved.
func (s *SettingsService) GetSettings(ctx context.Context, userID string) (string, error) {
	return s.cache.Get(ctx, settingsKey(userID))
}

// PutSettings overwrites the settings blob. The payload is opaque here; the
// client owns its shape. Settings never expire.
func (s *SettingsService) PutSettings(ctx context.Context, userID, payload string) error {
	return s.cache.Set(ctx, settingsKey(userID), payload, 0)
}

// WipeData deletes the user's progress, activity log, quiz results and
// certificates. Courses and notes are kept. The deletes are independent;
// a failure partway leaves earlier collections cleared.
func (s *SettingsService) WipeData(ctx context.Context, userID string) error {
	if err := s.progress.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear topic progress: %w", err)
	}
	if err := s.activity.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear activities: %w", err)
	}
	if err := s.results.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear quiz results: %w", err)
	}
	if err := s.certs.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear certificates: %w", err)
	}

	s.publisher.Publish("user.data_cleared", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
