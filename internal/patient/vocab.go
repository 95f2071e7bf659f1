package patient

// Closed value sets offered by the console. The service may accept other
// values; the console only ever offers these.

var Ethnicities = []string{"White", "Hispanic", "Black", "Asian", "Other"}

var BiologicalSexes = []string{"Male", "Female", "Intersex"}

var DiabetesTypes = []string{"Not Applicable", "Type 1", "Type 2", "Gestational"}

// Physicians is the fixed physician/group list; the console never fetches it.
var Physicians = []string{"Jane Doe", "John Smith", "Emily Carter"}

var Relationships = []string{"Spouse", "Parent", "Child", "Sibling", "Friend"}

// Countries, States and Counties back the address selects. States and
// Counties do not yet vary with the selected country; the deployed console
// ships the same lists regardless, so these do too.
var (
	Countries = []string{"USA", "Canada"}
	States    = []string{"CA", "TX", "FL"}
	Counties  = []string{"Orange County", "Los Angeles County"}
)

// MedicalConditions is the fixed vocabulary behind medicalHistory.
var MedicalConditions = []string{
	"None", "Acne", "Allergies", "Alzheimer's Disease", "Anxiety", "Asthma",
	"Celiac Disease", "Hypertension", "Hypothyroidism",
	"Migraine", "Arthritis",
}

// DefaultRelationship is what a freshly added caregiver starts with. It is
// deliberately not in Relationships: the deployed console defaults to a value
// the relationship select never offers, and that behavior is kept until the
// product decides otherwise.
const DefaultRelationship = "Family Member"

// IsOneOf reports whether value appears in the given value set.
func IsOneOf(value string, set []string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
