package assessment

import (
	"math"
	"sort"
)

type questionResult struct {
	QuestionID string
	Earned     int
	Correct    bool
}

type scoreResult struct {
	Earned    int
	Total     int
	Score     int
	Passed    bool
	Questions []questionResult
}

// grade scores answers against the assessment. A question earns its points only
// when the chosen option set equals the correct set exactly.
func grade(a Assessment, answers Answers) scoreResult {
	res := scoreResult{Questions: make([]questionResult, 0, len(a.Questions))}
	for _, q := range a.Questions {
		res.Total += q.Points
		qr := questionResult{QuestionID: q.ID.String()}
		if sameSet(correctOptions(q), answers[q.ID.String()]) {
			qr.Correct = true
			qr.Earned = q.Points
			res.Earned += q.Points
		}
		res.Questions = append(res.Questions, qr)
	}
	if res.Total > 0 {
		res.Score = int(math.Round(float64(res.Earned) * 100 / float64(res.Total)))
	}
	res.Passed = res.Total > 0 && res.Score >= a.PassScore
	return res
}

func correctOptions(q Question) []string {
	var ids []string
	for _, o := range q.Options {
		if o.IsCorrect {
			ids = append(ids, o.ID.String())
		}
	}
	return ids
}

func sameSet(want, got []string) bool {
	if len(want) == 0 || len(want) != len(dedupe(got)) {
		return false
	}
	w := append([]string(nil), want...)
	g := dedupe(got)
	sort.Strings(w)
	sort.Strings(g)
	for i := range w {
		if w[i] != g[i] {
			return false
		}
	}
	return true
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
