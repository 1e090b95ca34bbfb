package applicant

import "github.com/artem13815/hr-dashboard/pkg/nlp"

// Filter narrows an applicant listing. Zero values mean "any".
type Filter struct {
	JobID    int64
	JobMatch JobMatch
	Status   Status
	Query    string
}

// Apply returns the applicants matching f, preserving input order.
func (f Filter) Apply(items []Applicant) []Applicant {
	out := make([]Applicant, 0, len(items))
	for _, a := range items {
		if f.JobID != 0 && a.JobID != f.JobID {
			continue
		}
		if f.JobMatch != "" && a.JobMatch != f.JobMatch {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if !nlp.MatchesAll(f.Query, a.Name, a.Email) {
			continue
		}
		out = append(out, a)
	}
	return out
}
