package pipeline

import "log/slog"

// Stats summarizes one run for the end-of-run report.
type Stats struct {
	Dossiers         int `json:"dossiers"`
	Relations        int `json:"relations"`
	DistinctSources  int `json:"distinct_sources"`
	DistinctTargets  int `json:"distinct_targets"`
	Clusters         int `json:"clusters"`
	FlaggedForReview int `json:"flagged_for_review"`
}

func summarize(res *Result) Stats {
	s := Stats{
		Dossiers:  len(res.Dossiers),
		Relations: len(res.Relations),
	}

	sources := make(map[string]bool)
	targets := make(map[string]bool)
	for _, r := range res.Relations {
		sources[r.Source] = true
		targets[r.Target] = true
	}
	s.DistinctSources = len(sources)
	s.DistinctTargets = len(targets)

	clusters := make(map[int]bool)
	for _, d := range res.Dossiers {
		if d.ClusterID != 0 {
			clusters[d.ClusterID] = true
		}
		if d.PostprocessingNote != "" {
			s.FlaggedForReview++
		}
	}
	s.Clusters = len(clusters)
	return s
}

// Log writes the summary through the default logger.
func (s Stats) Log() {
	slog.Info("pipeline finished",
		"dossiers", s.Dossiers,
		"relations", s.Relations,
		"distinct_sources", s.DistinctSources,
		"distinct_targets", s.DistinctTargets,
		"clusters", s.Clusters,
		"flagged_for_review", s.FlaggedForReview,
	)
}
