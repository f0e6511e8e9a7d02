package advisory

import "context"

// Mock returns canned diagnoses and advice. Selected when no API key is
// configured, and used throughout the handler tests.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) DiagnoseCropImage(_ context.Context, _ string) (DiseaseDiagnosis, error) {
	return DiseaseDiagnosis{
		DiseaseName: "Tomato Leaf Blight",
		Confidence:  85,
		OrganicSolutions: []string{
			"Apply neem oil spray twice weekly",
			"Use copper-based fungicide",
			"Improve air circulation around plants",
		},
		ChemicalSolutions: []string{
			"Apply Mancozeb fungicide",
			"Use Chlorothalonil spray",
			"Apply Copper oxychloride",
		},
		Description: "This appears to be tomato leaf blight, a common fungal disease affecting tomato plants. The brown spots and yellowing indicate fungal infection.",
	}, nil
}

var mockAdvice = map[string]string{
	"en": "Based on your question about farming, I recommend following organic practices, testing soil pH regularly, and using crop rotation to maintain soil health. Always consult local agricultural experts for region-specific advice.",
	"hi": "आपके खेती के सवाल के आधार पर, मैं जैविक तरीकों का पालन करने, मिट्टी का pH नियमित रूप से जांचने और मिट्टी के स्वास्थ्य को बनाए रखने के लिए फसल चक्र का उपयोग करने की सलाह देता हूं।",
}

func (m *Mock) GenerateAdvice(_ context.Context, _ string, language string) (string, error) {
	if advice, ok := mockAdvice[language]; ok {
		return advice, nil
	}
	return mockAdvice["en"], nil
}
