package clue

import "slices"

// RankedAnswer is one distinct answer with its best score.
type RankedAnswer struct {
	Answer     string  `json:"answer" yaml:"answer"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

// Solutions groups scored answers by answer string. Each answer is ranked by its best
// score and keeps every derivation that produced it.
type Solutions struct {
	scores      map[string]float64
	derivations map[string][]Answer
}

// CollectSolutions folds answers into Solutions. Derivations keep the input order.
func CollectSolutions(answers []Answer) *Solutions {
	s := &Solutions{
		scores:      make(map[string]float64),
		derivations: make(map[string][]Answer),
	}
	for _, a := range answers {
		s.derivations[a.Answer] = append(s.derivations[a.Answer], a)
		if best, ok := s.scores[a.Answer]; !ok || a.Similarity > best {
			s.scores[a.Answer] = a.Similarity
		}
	}
	return s
}

// Len returns the number of distinct answers.
func (s *Solutions) Len() int {
	return len(s.scores)
}

// Derivations returns every annotated answer recorded for answer.
func (s *Solutions) Derivations(answer string) []Answer {
	return slices.Clone(s.derivations[answer])
}

// SortedAnswers returns the distinct answers best first, using the same order as Sort.
func (s *Solutions) SortedAnswers() []RankedAnswer {
	ranked := make([]RankedAnswer, 0, len(s.scores))
	for answer, score := range s.scores {
		ranked = append(ranked, RankedAnswer{Answer: answer, Similarity: score})
	}
	slices.SortFunc(ranked, func(a, b RankedAnswer) int {
		return Compare(Answer{Answer: b.Answer, Similarity: b.Similarity}, Answer{Answer: a.Answer, Similarity: a.Similarity})
	})
	return ranked
}
