package question

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"geoquiz/internal/quiz"
)

//go:embed geography.yml
var builtinBank []byte

// Builtin returns the fixed geography questions compiled into the binary.
func Builtin() ([]quiz.Question, error) {
	bank, err := Parse(builtinBank)
	if err != nil {
		return nil, errors.Wrap(err, "load built-in questions")
	}
	return bank.QuizQuestions(), nil
}

// Parse decodes and validates a question bank document.
func Parse(data []byte) (Bank, error) {
	var bank Bank
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bank); err != nil {
		return Bank{}, errors.Wrap(err, "parse yaml")
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Bank{}, errors.New("parse yaml: multiple documents are not supported")
		}
		return Bank{}, errors.Wrap(err, "parse yaml")
	}
	return Normalize(bank)
}

// QuizQuestions converts bank entries into quiz questions.
func (b Bank) QuizQuestions() []quiz.Question {
	questions := make([]quiz.Question, 0, len(b.Questions))
	for _, entry := range b.Questions {
		answer := entry.Answer != nil && *entry.Answer
		questions = append(questions, quiz.Question{Statement: entry.Statement, Answer: answer})
	}
	return questions
}
