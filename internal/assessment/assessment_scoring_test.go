package assessment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func scoringFixture(passScore int) (Assessment, []string, []string) {
	a, b := uuid.New(), uuid.New()
	x, y, z := uuid.New(), uuid.New(), uuid.New()
	single := Question{
		ID:     uuid.New(),
		Type:   QuestionSingle,
		Points: 7,
		Options: []Option{
			{ID: a, IsCorrect: true},
			{ID: b},
		},
	}
	multi := Question{
		ID:     uuid.New(),
		Type:   QuestionMulti,
		Points: 3,
		Options: []Option{
			{ID: x, IsCorrect: true},
			{ID: y, IsCorrect: true},
			{ID: z},
		},
	}
	return Assessment{PassScore: passScore, Questions: []Question{single, multi}},
		[]string{single.ID.String(), a.String(), b.String()},
		[]string{multi.ID.String(), x.String(), y.String(), z.String()}
}

func TestGrade(t *testing.T) {
	a, single, multi := scoringFixture(70)

	tests := []struct {
		name       string
		answers    Answers
		wantScore  int
		wantEarned int
		wantPassed bool
	}{
		{
			name:       "semua benar",
			answers:    Answers{single[0]: {single[1]}, multi[0]: {multi[2], multi[1]}},
			wantScore:  100,
			wantEarned: 10,
			wantPassed: true,
		},
		{
			name:       "exactly on the pass mark",
			answers:    Answers{single[0]: {single[1]}},
			wantScore:  70,
			wantEarned: 7,
			wantPassed: true,
		},
		{
			name:       "partial multi earns nothing",
			answers:    Answers{multi[0]: {multi[1]}},
			wantScore:  0,
			wantEarned: 0,
		},
		{
			name:       "extra wrong option on multi",
			answers:    Answers{multi[0]: {multi[1], multi[2], multi[3]}},
			wantScore:  0,
			wantEarned: 0,
		},
		{
			name:       "duplicate choices count once",
			answers:    Answers{multi[0]: {multi[1], multi[1], multi[2]}},
			wantScore:  30,
			wantEarned: 3,
		},
		{
			name:       "wrong single",
			answers:    Answers{single[0]: {single[2]}},
			wantScore:  0,
			wantEarned: 0,
		},
		{
			name:      "no answers",
			answers:   nil,
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := grade(a, tt.answers)
			assert.Equal(t, 10, res.Total)
			assert.Equal(t, tt.wantEarned, res.Earned)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.Equal(t, tt.wantPassed, res.Passed)
			assert.Len(t, res.Questions, 2)
		})
	}
}

func TestGrade_Rounding(t *testing.T) {
	q := func() Question {
		return Question{ID: uuid.New(), Points: 1, Options: []Option{{ID: uuid.New(), IsCorrect: true}}}
	}
	a := Assessment{PassScore: 67, Questions: []Question{q(), q(), q()}}
	answers := Answers{}
	for _, qq := range a.Questions[:2] {
		answers[qq.ID.String()] = []string{qq.Options[0].ID.String()}
	}

	res := grade(a, answers)
	assert.Equal(t, 67, res.Score)
	assert.True(t, res.Passed)
}

func TestGrade_EmptyAssessmentNeverPasses(t *testing.T) {
	res := grade(Assessment{PassScore: 0}, Answers{})
	assert.Equal(t, 0, res.Total)
	assert.False(t, res.Passed)
}

func TestAnswers_ScanValue(t *testing.T) {
	in := Answers{"q1": {"o1", "o2"}}
	raw, err := in.Value()
	assert.NoError(t, err)

	var out Answers
	assert.NoError(t, out.Scan(raw))
	assert.Equal(t, in, out)

	assert.NoError(t, out.Scan(nil))
	assert.Empty(t, out)
	assert.Error(t, out.Scan(42))
}

func TestValidateAnswers(t *testing.T) {
	a, single, multi := scoringFixture(70)
	a.Questions[0].Type = QuestionTrueFalse

	assert.NoError(t, validateAnswers(a, map[string][]string{single[0]: {single[1]}, multi[0]: {multi[1], multi[2]}}))
	assert.Error(t, validateAnswers(a, map[string][]string{uuid.NewString(): {single[1]}}))
	assert.Error(t, validateAnswers(a, map[string][]string{single[0]: {multi[1]}}))
	assert.Error(t, validateAnswers(a, map[string][]string{single[0]: {single[1], single[2]}}))
	assert.NoError(t, validateAnswers(a, map[string][]string{single[0]: {single[1], single[1]}}))
}

func TestValidateQuestion(t *testing.T) {
	opts := func(correct ...bool) []OptionInput {
		out := make([]OptionInput, len(correct))
		for i, c := range correct {
			out[i] = OptionInput{Label: "opsi", IsCorrect: c}
		}
		return out
	}

	assert.NoError(t, validateQuestion(AddQuestionRequest{Type: QuestionSingle, Points: 1, Options: opts(true, false, false)}))
	assert.Error(t, validateQuestion(AddQuestionRequest{Type: QuestionSingle, Points: 1, Options: opts(true, true)}))
	assert.NoError(t, validateQuestion(AddQuestionRequest{Type: QuestionTrueFalse, Points: 1, Options: opts(false, true)}))
	assert.Error(t, validateQuestion(AddQuestionRequest{Type: QuestionTrueFalse, Points: 1, Options: opts(false, true, false)}))
	assert.NoError(t, validateQuestion(AddQuestionRequest{Type: QuestionMulti, Points: 2, Options: opts(true, true, false)}))
	assert.Error(t, validateQuestion(AddQuestionRequest{Type: QuestionMulti, Points: 2, Options: opts(false, false)}))
	assert.Error(t, validateQuestion(AddQuestionRequest{Type: QuestionMulti, Points: 0, Options: opts(true, false)}))
}
