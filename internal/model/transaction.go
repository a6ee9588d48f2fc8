package model

import "time"

type Transaction struct {
	ID       string
	Amount   int64 // cents
	Employee Employee
	Merchant string
	Date     time.Time
}

// TransactionPage is one slice of the all-employees feed.
// NextPage is nil when no further pages exist.
type TransactionPage struct {
	Data     []Transaction
	NextPage *int
}

func (p TransactionPage) IsLast() bool {
	return p.NextPage == nil
}
