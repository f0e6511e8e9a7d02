package advisory

import "context"

// DiseaseDiagnosis is the parsed result of a crop-image analysis.
// Confidence is always within [0,100] and the solution lists are never
// empty by the time a caller sees them.
type DiseaseDiagnosis struct {
	DiseaseName       string   `json:"diseaseName"`
	Confidence        float64  `json:"confidence"`
	OrganicSolutions  []string `json:"organicSolutions"`
	ChemicalSolutions []string `json:"chemicalSolutions"`
	Description       string   `json:"description"`
}

// Client is the advisory capability behind the disease-detection and chat
// routes. Implementations: OpenAI (real) and Mock (canned, for tests and
// keyless deployments).
type Client interface {
	DiagnoseCropImage(ctx context.Context, imageBase64 string) (DiseaseDiagnosis, error)
	GenerateAdvice(ctx context.Context, question, language string) (string, error)
}

const fallbackAdvice = "I couldn't provide advice at this time. Please try again."

var languageNames = map[string]string{
	"ka": "Kannada",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"en": "English",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// sanitize backfills whatever the model left out so downstream code never
// stores partial rows.
func sanitize(d DiseaseDiagnosis) DiseaseDiagnosis {
	if d.DiseaseName == "" {
		d.DiseaseName = "Unknown Disease"
	}
	if d.Description == "" {
		d.Description = "No description available"
	}
	if len(d.OrganicSolutions) == 0 {
		d.OrganicSolutions = []string{"Consult your local agricultural extension office for organic treatment options"}
	}
	if len(d.ChemicalSolutions) == 0 {
		d.ChemicalSolutions = []string{"Consult your local agricultural extension office for chemical treatment options"}
	}
	d.Confidence = clampConfidence(d.Confidence)
	return d
}
