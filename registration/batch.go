package registration

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// PricePerPersonMajor is the fixed per-person fee in whole CHF.
const PricePerPersonMajor int64 = 170

func PricePerPerson() *money.Money {
	return money.New(PricePerPersonMajor*100, money.CHF)
}

// Batch holds the in-memory registrant list for one signup session.
// It is not persisted anywhere; navigating away before payment loses it.
type Batch struct {
	People   []Person
	IntentID string
}

// NewBatch starts with a single blank person, matching the signup form.
func NewBatch() *Batch {
	return &Batch{People: []Person{{}}}
}

func (b *Batch) AddPerson() {
	b.People = append(b.People, Person{})
}

// RemovePerson is a no-op when only one person remains or the index is
// out of range.
func (b *Batch) RemovePerson(i int) {
	if len(b.People) <= 1 || i < 0 || i >= len(b.People) {
		return
	}
	b.People = append(b.People[:i], b.People[i+1:]...)
}

func (b *Batch) UpdatePerson(i int, update PersonUpdate) {
	if i < 0 || i >= len(b.People) {
		return
	}
	b.People[i].apply(update)
}

// Total is always recomputed from the participant count, never stored.
func (b *Batch) Total() *money.Money {
	return money.New(int64(len(b.People))*PricePerPersonMajor*100, money.CHF)
}

// TotalMajorUnits is the total in whole CHF, the unit used in intent
// metadata and sheet rows.
func (b *Batch) TotalMajorUnits() int64 {
	return int64(len(b.People)) * PricePerPersonMajor
}

// AmountMinorUnits is the total in rappen, the unit the payment
// provider charges in.
func (b *Batch) AmountMinorUnits() int64 {
	return b.Total().Amount()
}

// Validate returns the first violation as a user-facing message.
func (b *Batch) Validate() error {
	if len(b.People) == 0 {
		return NewValidationError("At least one person is required")
	}

	for i, p := range b.People {
		if strings.TrimSpace(p.FirstName) == "" {
			return NewValidationError(fmt.Sprintf("Person %d: first name is required", i+1))
		}
		if strings.TrimSpace(p.LastName) == "" {
			return NewValidationError(fmt.Sprintf("Person %d: last name is required", i+1))
		}
		if strings.TrimSpace(p.Phone) == "" {
			return NewValidationError(fmt.Sprintf("Person %d: phone number is required", i+1))
		}
		if !p.MealOption.IsValid() {
			return NewValidationError(fmt.Sprintf("Person %d: please choose a meal option (Vegi/Vegan/Fleisch)", i+1))
		}
	}

	return nil
}
