package meshcut

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

// A Job is one independent split for SplitBatch.
type Job struct {
	Faces []*model3d.Triangle
	Plane Plane
}

type JobResult struct {
	Result *Result
	Err    error
}

// SplitBatch runs Split on every job, using up to concurrency Goroutines.
// If concurrency is 0, GOMAXPROCS is used.
//
// The results are in the same order as the jobs.
func (s *Splitter) SplitBatch(jobs []Job, concurrency int) []JobResult {
	results := make([]JobResult, len(jobs))
	essentials.ConcurrentMap(concurrency, len(jobs), func(i int) {
		res, err := s.Split(jobs[i].Faces, jobs[i].Plane)
		results[i] = JobResult{Result: res, Err: err}
	})
	return results
}
