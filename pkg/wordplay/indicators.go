package wordplay

// Indicators are the words that signal a kind of wordplay.
type Indicators struct {
	Anagram map[string]bool
	Hidden  map[string]bool
}

func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// DefaultIndicators covers the common anagram and hidden-word indicators.
func DefaultIndicators() Indicators {
	return Indicators{
		Anagram: setOf(
			"about", "abroad", "adapted", "altered", "anew", "arranged", "awful", "awkward",
			"bad", "badly", "battered", "bent", "broken", "broke", "bust", "changed",
			"chaotic", "confused", "corrupt", "crazy", "damaged", "disturbed", "drunk",
			"erratic", "fancy", "free", "funny", "jumbled", "mad", "messy", "mixed",
			"mixed_up", "muddled", "novel", "odd", "off", "out", "poor", "potty", "reformed",
			"rough", "ruined", "scrambled", "shattered", "shuffled", "sort_of", "spilt",
			"stormy", "strange", "twisted", "unusual", "upset", "wild", "wrecked", "wrong",
		),
		Hidden: setOf(
			"among", "amongst", "buried", "carries", "concealed", "contains", "held",
			"held_by", "hidden", "hides", "hiding", "holds", "in", "inside", "part",
			"part_of", "partly", "piece_of", "some", "within",
		),
	}
}
