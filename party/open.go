package party

import (
	"context"
	"log/slog"
)

// Open picks the live feed when feedURL is set and the scenario otherwise.
// The returned Scenario is nil for a live feed.
func Open(ctx context.Context, scenario, feedURL string, logger *slog.Logger) (Source, *Scenario, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if feedURL != "" {
		feed, err := DialFeed(ctx, feedURL, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("party feed connected", "url", feedURL)
		return feed, nil, feed.Close, nil
	}

	s, err := LoadScenario(scenario)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("party scenario loaded", "scenario", s.Name(), "members", len(s.spec.Members))
	return s, s, func() error { return nil }, nil
}
