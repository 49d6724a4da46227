package registration

// MealOption values are the wire literals the sheet and any in-flight
// intent metadata already contain, so they stay in their original form.
type MealOption string

const (
	MEAL_UNSET      MealOption = ""
	MEAL_VEGETARIAN MealOption = "Vegi"
	MEAL_VEGAN      MealOption = "Vegan"
	MEAL_MEAT       MealOption = "Fleisch"
)

func (m MealOption) IsValid() bool {
	switch m {
	case MEAL_VEGETARIAN, MEAL_VEGAN, MEAL_MEAT:
		return true
	default:
		return false
	}
}

// Person is one registrant. The JSON tags are the metadata slot format;
// they predate this service and must not change.
type Person struct {
	FirstName  string     `json:"vorname"`
	LastName   string     `json:"name"`
	Phone      string     `json:"tel"`
	Email      string     `json:"email"`
	MealOption MealOption `json:"option"`
	Allergies  string     `json:"allergien"`
}

// PersonUpdate merges the set fields into an existing Person.
type PersonUpdate struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Email      *string
	MealOption *MealOption
	Allergies  *string
}

func (p *Person) apply(update PersonUpdate) {
	if update.FirstName != nil {
		p.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		p.LastName = *update.LastName
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.Email != nil {
		p.Email = *update.Email
	}
	if update.MealOption != nil {
		p.MealOption = *update.MealOption
	}
	if update.Allergies != nil {
		p.Allergies = *update.Allergies
	}
}
