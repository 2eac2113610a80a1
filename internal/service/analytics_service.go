package service

import (
	"context"
	"sort"
	"time"

	"vlearn-backend/internal/models"
)

// minutesPerActivity is the assumed study time for one logged activity.
const minutesPerActivity = 12

type AnalyticsService struct {
	courses    CourseStore
	progress   ProgressStore
	activities ActivityStore
	results    QuizResultStore
	certs      CertificateStore
}

func NewAnalyticsService(
	courses CourseStore,
	progress ProgressStore,
	activities ActivityStore,
	results QuizResultStore,
	certs CertificateStore,
) *AnalyticsService {
	return &AnalyticsService{
		courses:    courses,
		progress:   progress,
		activities: activities,
		results:    results,
		certs:      certs,
	}
}

// WeeklyProgress maps a user's activity log onto the trailing seven local
// calendar days, oldest first. Each day scores min(count*20, 100) — a
// display heuristic, not measured study time.
func WeeklyProgress(activities []models.Activity, now time.Time) []int {
	week := make([]int, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		count := 0
		for _, activity := range activities {
			d := activity.Date.In(now.Location())
			if !d.Before(dayStart) && d.Before(dayEnd) {
				count++
			}
		}

		percent := count * 20
		if percent > 100 {
			percent = 100
		}
		week = append(week, percent)
	}
	return week
}

// Summary assembles the analytics view for one user.
func (s *AnalyticsService) Summary(ctx context.Context, userID string, now time.Time) (*models.AnalyticsSummary, error) {
	courses, err := s.courses.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.activities.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	results, err := s.results.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	certs, err := s.certs.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &models.AnalyticsSummary{
		TotalCourses:        len(courses),
		Certificates:        len(certs),
		TopicCompletionRate: make(map[string]float64),
		WeeklyProgress:      WeeklyProgress(activities, now),
		StudyTime:           len(activities) * minutesPerActivity,
		TotalQuizzesTaken:   len(results),
	}

	for _, course := range courses {
		if course.Completed {
			summary.CompletedCourses++
		}
		summary.TotalTopics += len(course.Topics)

		progress, err := s.progress.Find(ctx, userID, course.ID)
		if err != nil {
			return nil, err
		}
		done := progress.CompletedCount()
		summary.CompletedTopics += done
		if len(course.Topics) > 0 {
			summary.TopicCompletionRate[course.ID] = float64(done) / float64(len(course.Topics)) * 100
		} else {
			summary.TopicCompletionRate[course.ID] = 0
		}
	}

	if len(results) > 0 {
		total := 0
		for _, result := range results {
			total += result.Score
		}
		summary.AverageQuizScore = float64(total) / float64(len(results))
	}

	recent := make([]models.Activity, len(activities))
	copy(recent, activities)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	summary.RecentActivity = recent

	return summary, nil
}
