package importer

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column.
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a statement export. Each column
// lists the header spellings it accepts.
type Profile struct {
	Name        string
	DateCol     []string
	DescCol     []string
	CategoryCol []string // optional
	TypeCol     []string // optional, overrides the sign when present
	AmountMode  amountMode
	AmountCol   []string // used when AmountMode == amountSingle
	DebitCol    []string // used when AmountMode == amountSplit
	CreditCol   []string // used when AmountMode == amountSplit
}

// required returns the column alias groups that must all be present.
func (p Profile) required() [][]string {
	cols := [][]string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is tried in order; more specific layouts come first.
var profiles = []Profile{
	{
		Name:        "aqari",
		DateCol:     []string{"date"},
		DescCol:     []string{"description"},
		CategoryCol: []string{"category"},
		TypeCol:     []string{"type"},
		AmountMode:  amountSingle,
		AmountCol:   []string{"amount"},
	},
	{
		Name:       "statement",
		DateCol:    []string{"التاريخ", "تاريخ العملية"},
		DescCol:    []string{"البيان", "الوصف"},
		AmountMode: amountSplit,
		DebitCol:   []string{"مدين", "المدين"},
		CreditCol:  []string{"دائن", "الدائن"},
	},
	{
		Name:        "ledger",
		DateCol:     []string{"التاريخ", "تاريخ العملية"},
		DescCol:     []string{"الوصف", "البيان"},
		CategoryCol: []string{"الفئة", "التصنيف"},
		AmountMode:  amountSingle,
		AmountCol:   []string{"المبلغ"},
	},
}
