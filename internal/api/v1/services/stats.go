package services

import (
	"github.com/daymade/medscribe/internal/app/api/provider"
)

// DefaultStatsService exposes the in-memory run statistics.
type DefaultStatsService struct {
	collector *provider.StatsCollector
}

var _ StatsService = (*DefaultStatsService)(nil)

func NewStatsService(collector *provider.StatsCollector) *DefaultStatsService {
	return &DefaultStatsService{collector: collector}
}

func (s *DefaultStatsService) Overall() provider.OverallStats {
	return s.collector.Overall()
}
