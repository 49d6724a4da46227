package registration

import "time"

// SheetStatusPaid is the status literal in the last row column.
const SheetStatusPaid = "Paid"

// SheetRow is one appended spreadsheet row. The sheet is append-only
// and is the sole system of record; no read-modify-write ever happens
// against it.
type SheetRow struct {
	Timestamp       time.Time
	PaymentIntentID string
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	MealOption      MealOption
	Allergies       string
	Amount          int64
	Status          string
}

// Columns returns the fixed 10-column tuple in sheet order.
func (r SheetRow) Columns() []any {
	return []any{
		r.Timestamp.UTC().Format(time.RFC3339),
		r.PaymentIntentID,
		r.FirstName,
		r.LastName,
		r.Phone,
		r.Email,
		string(r.MealOption),
		r.Allergies,
		r.Amount,
		r.Status,
	}
}

// BuildRows produces one row per person, each carrying the per-person
// price and the shared payment intent ID.
func BuildRows(people []Person, intentID string, at time.Time) []SheetRow {
	rows := make([]SheetRow, 0, len(people))
	for _, p := range people {
		rows = append(rows, SheetRow{
			Timestamp:       at,
			PaymentIntentID: intentID,
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			Phone:           p.Phone,
			Email:           p.Email,
			MealOption:      p.MealOption,
			Allergies:       p.Allergies,
			Amount:          PricePerPersonMajor,
			Status:          SheetStatusPaid,
		})
	}
	return rows
}
