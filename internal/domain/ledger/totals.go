package ledger

// Totals summarizes signed amounts. Expense is reported as a positive number.
type Totals struct {
	IncomeCents  int64
	ExpenseCents int64
	NetCents     int64
}

func (t *Totals) add(amount int64) {
	if amount >= 0 {
		t.IncomeCents += amount
	} else {
		t.ExpenseCents -= amount
	}
	t.NetCents = t.IncomeCents - t.ExpenseCents
}

type Summary struct {
	Totals
	// ByMethod only includes movements with a payment method.
	ByMethod map[Method]Totals
}

func Summarize(entries []Entry) Summary {
	s := Summary{ByMethod: make(map[Method]Totals)}
	for _, e := range entries {
		s.add(e.AmountCents)
		if e.Method == MethodNone {
			continue
		}
		t := s.ByMethod[e.Method]
		t.add(e.AmountCents)
		s.ByMethod[e.Method] = t
	}
	return s
}

// Entry is the part of a movement the totals depend on.
type Entry struct {
	AmountCents int64
	Method      Method
}

func EntryOf(m *Movement) Entry {
	return Entry{AmountCents: m.amountCents, Method: m.method}
}
