package queries

import (
	"time"

	"lucidlog-backend/domain/core/entities"
	"lucidlog-backend/domain/insights"
)

// PatternView is the read-model projection of a pattern
type PatternView struct {
	Type            string               `json:"type"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Frequency       int                  `json:"frequency"`
	Confidence      float64              `json:"confidence"`
	RelatedSymbols  []string             `json:"relatedSymbols,omitempty"`
	RelatedEmotions []string             `json:"relatedEmotions,omitempty"`
	RelatedThemes   []string             `json:"relatedThemes,omitempty"`
	TimeRangeDays   int                  `json:"timeRangeDays"`
	FirstOccurrence time.Time            `json:"firstOccurrence"`
	LastOccurrence  time.Time            `json:"lastOccurrence"`
	Correlation     entities.Correlation `json:"correlation"`
	Insight         string               `json:"insight"`
	IsActive        bool                 `json:"isActive"`
}

// NewPatternView projects a pattern entity into its read model
func NewPatternView(p *entities.Pattern) PatternView {
	return PatternView{
		Type:            string(p.Type()),
		Name:            p.Name(),
		Description:     p.Description(),
		Frequency:       p.Frequency(),
		Confidence:      p.Confidence(),
		RelatedSymbols:  p.RelatedSymbols(),
		RelatedEmotions: p.RelatedEmotions(),
		RelatedThemes:   p.RelatedThemes(),
		TimeRangeDays:   p.TimeRangeDays(),
		FirstOccurrence: p.FirstOccurrence(),
		LastOccurrence:  p.LastOccurrence(),
		Correlation:     p.Correlation(),
		Insight:         p.Insight(),
		IsActive:        p.IsActive(),
	}
}

// NewPatternViews projects a slice of patterns, preserving order
func NewPatternViews(patterns []*entities.Pattern) []PatternView {
	views := make([]PatternView, len(patterns))
	for i, p := range patterns {
		views[i] = NewPatternView(p)
	}
	return views
}

// PatternInsightView pairs a pattern with its derived insight
type PatternInsightView struct {
	Pattern PatternView             `json:"pattern"`
	Insight insights.PatternInsight `json:"insight"`
}

// EntryView is the read-model projection of a journal entry
type EntryView struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Title        string    `json:"title"`
	Narrative    string    `json:"narrative"`
	Symbols      []string  `json:"symbols,omitempty"`
	Emotions     []string  `json:"emotions,omitempty"`
	Themes       []string  `json:"themes,omitempty"`
	Colors       []string  `json:"colors,omitempty"`
	ContextTags  []string  `json:"contextTags,omitempty"`
	SleepQuality int       `json:"sleepQuality"`
	Lucidity     int       `json:"lucidity"`
	Vividness    int       `json:"vividness"`
}

// NewEntryView projects an entry entity into its read model
func NewEntryView(e *entities.Entry) EntryView {
	return EntryView{
		ID:           e.ID().String(),
		Timestamp:    e.Timestamp(),
		Title:        e.Title(),
		Narrative:    e.Narrative(),
		Symbols:      e.Symbols(),
		Emotions:     e.Emotions(),
		Themes:       e.Themes(),
		Colors:       e.Colors(),
		ContextTags:  e.ContextTags(),
		SleepQuality: e.Metrics().SleepQuality(),
		Lucidity:     e.Metrics().Lucidity(),
		Vividness:    e.Metrics().Vividness(),
	}
}
