package domain

// TypeMonthlyCount is one row of the appointments-by-type-and-month report
type TypeMonthlyCount struct {
	Year  int
	Month string
	Type  string
	Count int64
}

// CustomerMonthlyCount is one row of the appointments-by-customer-and-month report
type CustomerMonthlyCount struct {
	Year         int
	Month        string
	CustomerID   int64
	CustomerName string
	Count        int64
}

// ContactMonthlyCount is one row of the appointments-by-contact-and-month report
type ContactMonthlyCount struct {
	Year        int
	Month       string
	ContactID   int64
	ContactName string
	Count       int64
}
