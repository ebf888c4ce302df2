package models

// Question is static reference data: the fixed survey questionnaire shared
// by submission validation, aggregation and export. Not persisted.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

var Questions = []Question{
	{
		ID:       1,
		Text:     "Does the service department keep up to the services as per agreed plan?",
		Category: "Service Adherence",
	},
	{
		ID:       2,
		Text:     "Is it clear who is responsible for your concern in the service dept.?",
		Category: "Responsibility Clarity",
	},
	{
		ID:       3,
		Text:     "How satisfied are you with the EOHS aspects of the service dept.?",
		Category: "EOHS Satisfaction",
	},
	{
		ID:       4,
		Text:     "How satisfied are you with the overall service quality in principle?",
		Category: "Service Quality",
	},
	{
		ID:       5,
		Text:     "Do you feel the service dept. focuses on loss/waste reduction?",
		Category: "Waste Reduction",
	},
}

func QuestionByID(id int) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
