package selection

import (
	"github.com/prepquiz/backend/internal/content"
	"github.com/prepquiz/backend/internal/synth"
)

// Catalog lists every value the filter selectors accept, so a client can
// build its start screen without knowing the datasets.
type Catalog struct {
	Subjects       []string `json:"subjects"`
	MathsChapters  []string `json:"maths_chapters"`
	MathsTypes     []string `json:"maths_types"`
	EnglishTopics  []string `json:"english_topics"`
	GKGSSubjects   []string `json:"gkgs_subjects"`
	PolityTopics   []string `json:"polity_topics"`
	StaticGKTopics []string `json:"static_gk_topics"`
	QuestionCounts []int    `json:"question_counts"` // 0 means the full pool
}

func (s *Selector) Catalog() Catalog {
	return Catalog{
		Subjects:       []string{SubjectMaths, SubjectEnglish, SubjectGKGS},
		MathsChapters:  s.lib.MathsChapters(),
		MathsTypes:     s.lib.MathsTypes(),
		EnglishTopics:  []string{synth.TypeIdioms, synth.TypeOneWord, synth.TypeSynonyms, synth.TypeAntonyms},
		GKGSSubjects:   []string{GKGSStaticGK, GKGSPolity},
		PolityTopics:   content.TopicsOf(s.lib.Polity),
		StaticGKTopics: content.TopicsOf(s.lib.StaticGK),
		QuestionCounts: []int{10, 20, 30, CountAll},
	}
}
