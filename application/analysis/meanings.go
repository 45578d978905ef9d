package analysis

import "fmt"

// Archetypal meaning lookup for insight text. The table is small and
// static; anything unknown gets the generic fallback.
var symbolMeanings = map[string]string{
	"water":   "Water often reflects your emotional state; recurring water points to feelings asking for attention.",
	"flying":  "Flying is commonly tied to freedom, ambition, or escaping constraints.",
	"falling": "Falling tends to surface when something in waking life feels out of control.",
	"teeth":   "Teeth imagery is classically linked to anxiety about appearance or loss.",
	"house":   "Houses usually stand in for the self; rooms and states of repair mirror inner territory.",
	"chase":   "Being chased suggests avoidance of an unresolved pressure.",
	"death":   "Death in journals rarely means death; it marks endings and transitions.",
	"snake":   "Snakes carry transformation and hidden fears in most traditions.",
	"fire":    "Fire points to intense emotion, anger, or creative drive.",
	"ocean":   "Oceans magnify the water motif: vast, deep feeling beyond immediate control.",
	"animals": "Animals often embody instinctive parts of yourself.",
	"school":  "School settings revisit evaluation anxiety and old social roles.",
	"car":     "Vehicles reflect how in-control you feel about your direction in life.",
}

var emotionMeanings = map[string]string{
	"fear":     "Recurring fear in entries usually tracks a waking stressor worth naming.",
	"joy":      "Frequent joy entries often coincide with periods of alignment; note what they share.",
	"anxiety":  "Anxiety as a recurring tone suggests an unresolved background pressure.",
	"anger":    "Repeated anger can mark a boundary being crossed in waking life.",
	"sadness":  "Recurring sadness may be processing a loss that daytime routine suppresses.",
	"wonder":   "Wonder and awe entries tend to follow novelty; they reward being revisited.",
	"confusion": "Persistent confusion across entries can mirror an undecided real-world question.",
}

var themeMeanings = map[string]string{
	"being chased":  "Chase themes signal avoidance; the pursuer is usually the thing you are not facing.",
	"being lost":    "Lost themes tend to appear during decisions about direction.",
	"returning":     "Returning to a known place suggests unfinished business there.",
	"searching":     "Searching themes track an unmet need; what you look for matters less than the looking.",
	"transformation": "Transformation themes accompany real change, often before you have admitted it.",
	"exams":         "Exam themes are the mind rehearsing judgment; they spike under evaluation pressure.",
}

// meaningFor returns the archetypal phrase for a value of a given
// attribute kind, or a generic fallback for unknown values.
func meaningFor(kind attributeKind, value string) string {
	var meaning string
	var ok bool

	switch kind {
	case kindSymbol:
		meaning, ok = symbolMeanings[value]
	case kindEmotion:
		meaning, ok = emotionMeanings[value]
	case kindTheme:
		meaning, ok = themeMeanings[value]
	}

	if ok {
		return meaning
	}
	return fmt.Sprintf("%q keeps returning in your entries; its meaning is personal, and tracking the contexts it appears in will sharpen it.", value)
}
