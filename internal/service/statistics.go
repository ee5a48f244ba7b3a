package service

import (
	"fmt"

	"volunteer-hub-backend/internal/repository"
)

// StatisticsService computes dashboard aggregates over the stored groups.
// Leaders count toward volunteer totals, so every group contributes
// len(members)+1 people.
type StatisticsService struct {
	groupRepo repository.GroupRepositoryInterface
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(groupRepo repository.GroupRepositoryInterface) *StatisticsService {
	return &StatisticsService{groupRepo: groupRepo}
}

// StatisticsResponse represents the dashboard aggregates
type StatisticsResponse struct {
	TotalGroups      int     `json:"total_groups"`
	TotalVolunteers  int     `json:"total_volunteers"`
	AverageGroupSize float64 `json:"average_group_size"`
}

// Overview computes the aggregates across every registered group
func (s *StatisticsService) Overview() (*StatisticsResponse, error) {
	groups, err := s.groupRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	stats := &StatisticsResponse{TotalGroups: len(groups)}
	for i := range groups {
		stats.TotalVolunteers += groups[i].HeadCount()
	}
	if stats.TotalGroups > 0 {
		stats.AverageGroupSize = float64(stats.TotalVolunteers) / float64(stats.TotalGroups)
	}

	return stats, nil
}
