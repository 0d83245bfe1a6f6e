package experiments

import "hexagon/experiments/metrics"

// RunMirror plays the greedy agent against itself. Every game is the same, so the
// records measure how long turns take rather than playing strength.
func RunMirror(cfg Config) (string, error) {
	greedy := metrics.AgentConfig{ID: 1, Name: "greedy"}
	matchUps := [][]metrics.AgentConfig{
		{greedy, greedy},
	}
	return runExperiment(cfg, "mirror", []metrics.AgentConfig{greedy}, matchUps)
}
