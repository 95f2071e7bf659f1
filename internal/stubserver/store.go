// Package stubserver is an in-memory stand-in for the remote patient
// service, used for local development and end-to-end exercising of the
// console. It reproduces the service's observable HTTP contract — field
// validation maps, duplicate rejections, verbatim error texts — without
// persistence or authentication.
package stubserver

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/wlabs/patient-console/internal/patient"
)

// Store holds patients in memory, in insertion order so search results are
// deterministic.
type Store struct {
	mu       sync.RWMutex
	patients []patient.Patient
}

func NewStore() *Store {
	return &Store{}
}

// Create assigns ids to the patient and its caregivers and stores a copy.
func (s *Store) Create(p patient.Patient) patient.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	p.Normalize()
	p.ID = uuid.NewString()
	for i := range p.Caregivers {
		p.Caregivers[i].ID = uuid.NewString()
	}
	s.patients = append(s.patients, p)
	return p.Clone()
}

// Get returns a copy of the patient with the given id.
func (s *Store) Get(id string) (patient.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return patient.Patient{}, false
}

// Update replaces the record with the given id; caregivers arriving without
// an id are treated as new and get one assigned.
func (s *Store) Update(id string, p patient.Patient) (patient.Patient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.patients {
		if s.patients[i].ID != id {
			continue
		}
		p = p.Clone()
		p.Normalize()
		p.ID = id
		for j := range p.Caregivers {
			if p.Caregivers[j].ID == "" {
				p.Caregivers[j].ID = uuid.NewString()
			}
		}
		s.patients[i] = p
		return p.Clone(), true
	}
	return patient.Patient{}, false
}

// Delete removes the record with the given id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients = append(s.patients[:i], s.patients[i+1:]...)
			return true
		}
	}
	return false
}

// Search matches the term case-insensitively against first name, last name
// and email, and literally against the phone number, like the service's
// lookup query.
func (s *Store) Search(term string) []patient.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(term)
	results := []patient.Patient{}
	for _, p := range s.patients {
		if strings.Contains(strings.ToLower(p.FirstName), lower) ||
			strings.Contains(strings.ToLower(p.LastName), lower) ||
			strings.Contains(strings.ToLower(p.Email), lower) ||
			strings.Contains(p.PhoneNumber, term) {
			results = append(results, p.Clone())
		}
	}
	return results
}

// HasDuplicate reports whether another patient shares first name, last name
// and date of birth, excluding the given id.
func (s *Store) HasDuplicate(firstName, lastName, dateOfBirth, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == excludeID {
			continue
		}
		if p.FirstName == firstName && p.LastName == lastName && p.DateOfBirth == dateOfBirth {
			return true
		}
	}
	return false
}

// hasDuplicateCaregivers reports whether two caregivers in the submitted
// list carry identical details.
func hasDuplicateCaregivers(caregivers []patient.Caregiver) bool {
	for i := range caregivers {
		for j := i + 1; j < len(caregivers); j++ {
			a, b := caregivers[i], caregivers[j]
			if a.FirstName == b.FirstName &&
				a.LastName == b.LastName &&
				a.Email == b.Email &&
				a.PhoneNumber == b.PhoneNumber &&
				a.RelationshipToPatient == b.RelationshipToPatient {
				return true
			}
		}
	}
	return false
}
