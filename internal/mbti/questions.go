package mbti

// Question is a single Likert-scale statement tagged with the dimension it measures.
type Question struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Dimension Dimension `json:"dimension"`
	Reverse   bool      `json:"reverse"`
}

var questionBank = []Question{
	{ID: 1, Text: "Ik krijg energie van tijd doorbrengen met andere mensen.", Dimension: Extraversion},
	{ID: 2, Text: "Ik heb tijd alleen nodig om weer op te laden.", Dimension: Introversion},
	{ID: 3, Text: "Ik begin makkelijk een gesprek met onbekenden.", Dimension: Extraversion},
	{ID: 4, Text: "Ik denk liever eerst na voordat ik iets zeg.", Dimension: Introversion},
	{ID: 5, Text: "Ik let vooral op concrete feiten en details.", Dimension: Sensing},
	{ID: 6, Text: "Ik zie vaak verbanden en mogelijkheden die anderen missen.", Dimension: Intuition},
	{ID: 7, Text: "Ik vertrouw op ervaring meer dan op ingevingen.", Dimension: Sensing},
	{ID: 8, Text: "Ik ben meer geboeid door ideeën dan door praktische zaken.", Dimension: Intuition},
	{ID: 9, Text: "Ik neem beslissingen op basis van logica en objectieve analyse.", Dimension: Thinking},
	{ID: 10, Text: "Ik houd bij beslissingen vooral rekening met de gevoelens van anderen.", Dimension: Feeling},
	{ID: 11, Text: "Eerlijkheid vind ik belangrijker dan tactvol zijn.", Dimension: Thinking},
	{ID: 12, Text: "Harmonie in een groep is voor mij erg belangrijk.", Dimension: Feeling},
	{ID: 13, Text: "Ik maak graag plannen en houd me daaraan.", Dimension: Judging},
	{ID: 14, Text: "Ik houd mijn opties graag zo lang mogelijk open.", Dimension: Perceiving},
	{ID: 15, Text: "Ik voel me prettig als taken ruim voor de deadline af zijn.", Dimension: Judging},
	{ID: 16, Text: "Ik werk het best spontaan en flexibel.", Dimension: Perceiving},
}

// Questions returns a copy of the built-in question bank.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionByID looks up a question in the built-in bank.
func QuestionByID(id int) (Question, bool) {
	return findQuestion(questionBank, id)
}

func findQuestion(questions []Question, id int) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
