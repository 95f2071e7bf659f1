package patient

// Patient is the record managed by the console. The ID is assigned by the
// remote service on create; the client never invents one. HeightCm and
// WeightKg stay as entered text until the service coerces them.
type Patient struct {
	ID                string      `json:"id,omitempty"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	Email             string      `json:"email"`
	PhoneNumber       string      `json:"phoneNumber"`
	HeightCm          Numeric     `json:"heightCm"`
	WeightKg          Numeric     `json:"weightKg"`
	DateOfBirth       string      `json:"dateOfBirth"`
	Ethnicity         string      `json:"ethnicity"`
	TypeOfDiabetes    string      `json:"typeOfDiabetes"`
	DateOfDiagnosis   string      `json:"dateOfDiagnosis"`
	BiologicalSex     string      `json:"biologicalSex"`
	Notes             string      `json:"notes"`
	AssignedPhysician string      `json:"assignedPhysician"`
	MedicalHistory    HistoryList `json:"medicalHistory"`
	Address           Address     `json:"address"`
	Caregivers        []Caregiver `json:"caregivers"`
}

// Address is embedded in a Patient and has no life of its own client-side.
type Address struct {
	Country        string `json:"country"`
	Zipcode        string `json:"zipcode"`
	MailingAddress string `json:"mailingAddress"`
	State          string `json:"state"`
	County         string `json:"county"`
}

// Caregiver is a positional element of a Patient's caregiver list. Its ID is
// assigned by the service once the whole Patient is persisted.
type Caregiver struct {
	ID                    string `json:"id,omitempty"`
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email"`
	PhoneNumber           string `json:"phoneNumber"`
	RelationshipToPatient string `json:"relationshipToPatient"`
}

// Default returns the fresh record the add form starts from.
func Default() Patient {
	return Patient{
		Ethnicity:         "White",
		TypeOfDiabetes:    "Type 1",
		BiologicalSex:     "Male",
		AssignedPhysician: "Jane Doe",
		MedicalHistory:    HistoryList{},
		Address: Address{
			Country: "USA",
			State:   "CA",
			County:  "Orange County",
		},
		Caregivers: []Caregiver{},
	}
}

// Normalize defaults nil sequences to empty ones so that client state always
// holds sequences, never absent values.
func (p *Patient) Normalize() {
	if p.MedicalHistory == nil {
		p.MedicalHistory = HistoryList{}
	}
	if p.Caregivers == nil {
		p.Caregivers = []Caregiver{}
	}
}

// Clone returns a deep, independent copy. Mutating the copy must never reach
// the original; the form's no-op detection depends on that.
func (p Patient) Clone() Patient {
	out := p
	if p.MedicalHistory != nil {
		out.MedicalHistory = make(HistoryList, len(p.MedicalHistory))
		copy(out.MedicalHistory, p.MedicalHistory)
	}
	if p.Caregivers != nil {
		out.Caregivers = make([]Caregiver, len(p.Caregivers))
		copy(out.Caregivers, p.Caregivers)
	}
	return out
}

// Equal reports structural equality over the whole record graph. Nil and
// empty sequences compare equal.
func (p Patient) Equal(other Patient) bool {
	if p.ID != other.ID ||
		p.FirstName != other.FirstName ||
		p.LastName != other.LastName ||
		p.Email != other.Email ||
		p.PhoneNumber != other.PhoneNumber ||
		p.HeightCm != other.HeightCm ||
		p.WeightKg != other.WeightKg ||
		p.DateOfBirth != other.DateOfBirth ||
		p.Ethnicity != other.Ethnicity ||
		p.TypeOfDiabetes != other.TypeOfDiabetes ||
		p.DateOfDiagnosis != other.DateOfDiagnosis ||
		p.BiologicalSex != other.BiologicalSex ||
		p.Notes != other.Notes ||
		p.AssignedPhysician != other.AssignedPhysician ||
		p.Address != other.Address {
		return false
	}
	if len(p.MedicalHistory) != len(other.MedicalHistory) {
		return false
	}
	for i, c := range p.MedicalHistory {
		if other.MedicalHistory[i] != c {
			return false
		}
	}
	if len(p.Caregivers) != len(other.Caregivers) {
		return false
	}
	for i, cg := range p.Caregivers {
		if other.Caregivers[i] != cg {
			return false
		}
	}
	return true
}

// DisplayName is the "First Last" form used in status messages.
func (p Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
