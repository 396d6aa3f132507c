// Package synth turns raw vocabulary records into four-way multiple-choice
// questions. Generation is deliberately re-run on every quiz start so the
// option order differs per attempt; nothing here is cached.
package synth

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/prepquiz/backend/internal/content"
	"github.com/prepquiz/backend/internal/domain/question"
	"github.com/prepquiz/backend/internal/id"
)

// Question type labels. These double as the English topic filter values.
const (
	TypeIdioms   = "Idioms"
	TypeOneWord  = "One Word Substitution"
	TypeSynonyms = "Synonyms"
	TypeAntonyms = "Antonyms"
)

const chapterEnglish = "English"

// distractorCount is fixed: one correct answer plus three wrong ones.
const distractorCount = 3

// CleanWord strips a trailing parenthetical gloss,
// e.g. "Desert (छोड़ देना)" -> "Desert".
func CleanWord(text string) string {
	return strings.TrimSpace(strings.SplitN(text, "(", 2)[0])
}

// IdiomQuestions emits one question per idiom. The correct answer is the
// idiom's meaning; distractors come from every other idiom's meaning.
func IdiomQuestions(records []content.Idiom) []question.Question {
	meanings := make([]string, len(records))
	for i, r := range records {
		meanings[i] = r.Meaning
	}

	var out []question.Question
	for i, r := range records {
		q, ok := assemble(
			id.Synthetic("IDIOM", i),
			TypeIdioms,
			fmt.Sprintf("What is the meaning of the idiom: %q?", r.Idiom),
			r.Meaning,
			"Hindi Meaning: "+r.Hindi,
			meanings,
		)
		if ok {
			out = append(out, q)
		}
	}
	return out
}

// OneWordQuestions emits one question per lexical-substitution record.
// Words are cleaned of their gloss before use.
func OneWordQuestions(records []content.OneWord) []question.Question {
	words := make([]string, len(records))
	for i, r := range records {
		words[i] = CleanWord(r.Word)
	}

	var out []question.Question
	for i, r := range records {
		q, ok := assemble(
			id.Synthetic("OWS", i),
			TypeOneWord,
			fmt.Sprintf("Substitute one word for: %q", r.Phrase),
			CleanWord(r.Word),
			"Hindi: "+r.Hindi,
			words,
		)
		if ok {
			out = append(out, q)
		}
	}
	return out
}

// SynAntQuestions emits up to two questions per record: a synonym question
// when the record lists synonyms, an antonym question when it lists
// antonyms. Both draw distractors from the pooled synonyms and antonyms of
// every record.
func SynAntQuestions(records []content.SynAnt) []question.Question {
	var pool []string
	for _, r := range records {
		pool = append(pool, splitWords(r.Synonyms)...)
		pool = append(pool, splitWords(r.Antonyms)...)
	}

	var out []question.Question
	for i, r := range records {
		word := CleanWord(r.Word)

		if synonyms := splitWords(r.Synonyms); len(synonyms) > 0 {
			q, ok := assemble(
				id.Synthetic("SYNO", i),
				TypeSynonyms,
				fmt.Sprintf("What is a synonym for %q?", word),
				synonyms[0],
				"Hindi: "+r.Hindi,
				pool,
			)
			if ok {
				out = append(out, q)
			}
		}

		if antonyms := splitWords(r.Antonyms); len(antonyms) > 0 {
			q, ok := assemble(
				id.Synthetic("ANTO", i),
				TypeAntonyms,
				fmt.Sprintf("What is an antonym for %q?", word),
				antonyms[0],
				"Hindi: "+r.Hindi,
				pool,
			)
			if ok {
				out = append(out, q)
			}
		}
	}
	return out
}

func splitWords(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var out []string
	for _, w := range strings.Split(list, ",") {
		if cleaned := CleanWord(w); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// assemble builds one shuffled four-option question. Records that cannot
// produce three distinct distractors are skipped rather than emitted short.
func assemble(qid, qType, text, correct, explanation string, pool []string) (question.Question, bool) {
	distractors := PickDistractors(correct, pool, distractorCount)
	if len(distractors) < distractorCount {
		return question.Question{}, false
	}

	options := append([]string{correct}, distractors...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q := question.Question{
		ID:          qid,
		Chapter:     chapterEnglish,
		Type:        qType,
		Text:        text,
		Options:     question.Options{},
		Explanation: explanation,
	}
	for i, k := range question.Keys {
		q.Options[k] = options[i]
		if options[i] == correct {
			q.CorrectOption = k
		}
	}
	return q, true
}
