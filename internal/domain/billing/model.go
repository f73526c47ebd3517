package billing

import (
	"github.com/shopspring/decimal"
)

// Status is the settlement state of a bill.
type Status string

const (
	StatusPending       Status = "pending"
	StatusPartiallyPaid Status = "partially-paid"
	StatusFullyCleared  Status = "fully-cleared"
)

// Valid reports whether s is one of the known settlement states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPartiallyPaid, StatusFullyCleared:
		return true
	}
	return false
}

// Label returns the human-readable form used in bill summaries.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusPartiallyPaid:
		return "Partially Paid"
	case StatusFullyCleared:
		return "Fully Cleared"
	}
	return "Unknown"
}

// Charge is a single billable entry on a bill.
type Charge struct {
	Description string
	Amount      decimal.Decimal
}

// Payment is a single settlement entry against a bill.
type Payment struct {
	Method string
	Amount decimal.Decimal
}

// Bill holds the charge/payment history for one patient and derives a
// settlement status from it. After every successful mutation the status is
// recomputed; SetStatus can override it manually until the next mutation.
type Bill struct {
	charges  []Charge
	payments []Payment
	status   Status
}

func NewBill() *Bill {
	return &Bill{status: StatusPending}
}

// AddCharge appends a charge entry. Non-positive amounts and empty
// descriptions are ignored without error.
func (b *Bill) AddCharge(description string, amount decimal.Decimal) {
	if description == "" || amount.Sign() <= 0 {
		return
	}
	b.charges = append(b.charges, Charge{Description: description, Amount: amount})
	b.recompute()
}

// AddPayment appends a payment entry. Non-positive amounts and empty
// methods are ignored without error.
func (b *Bill) AddPayment(method string, amount decimal.Decimal) {
	if method == "" || amount.Sign() <= 0 {
		return
	}
	b.payments = append(b.payments, Payment{Method: method, Amount: amount})
	b.recompute()
}

// TotalCharges sums all charge entries.
func (b *Bill) TotalCharges() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range b.charges {
		sum = sum.Add(c.Amount)
	}
	return sum
}

// TotalPayments sums all payment entries.
func (b *Bill) TotalPayments() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range b.payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Balance is total charges minus total payments, computed on demand from the
// stored sequences so it can never go stale.
func (b *Bill) Balance() decimal.Decimal {
	return b.TotalCharges().Sub(b.TotalPayments())
}

// Status returns the current settlement state.
func (b *Bill) Status() Status {
	return b.status
}

// SetStatus overrides the derived status unconditionally. The override holds
// until the next AddCharge/AddPayment recomputes it.
func (b *Bill) SetStatus(s Status) {
	b.status = s
}

func (b *Bill) recompute() {
	switch {
	case b.Balance().Sign() <= 0:
		b.status = StatusFullyCleared
	case len(b.payments) > 0:
		b.status = StatusPartiallyPaid
	default:
		b.status = StatusPending
	}
}

// Summary is a read-only snapshot of a bill for presentation.
type Summary struct {
	Charges       []Charge
	Payments      []Payment
	TotalCharges  decimal.Decimal
	TotalPayments decimal.Decimal
	Balance       decimal.Decimal
	Status        Status
}

// Summary snapshots the bill. The returned slices are copies; mutating them
// does not affect the bill.
func (b *Bill) Summary() Summary {
	charges := make([]Charge, len(b.charges))
	copy(charges, b.charges)
	payments := make([]Payment, len(b.payments))
	copy(payments, b.payments)
	return Summary{
		Charges:       charges,
		Payments:      payments,
		TotalCharges:  b.TotalCharges(),
		TotalPayments: b.TotalPayments(),
		Balance:       b.Balance(),
		Status:        b.status,
	}
}
