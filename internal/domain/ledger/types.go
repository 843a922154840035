package ledger

type Kind string

const (
	KindPaymentIncome    Kind = "PAYMENT_INCOME"
	KindManualIncome     Kind = "MANUAL_INCOME"
	KindManualExpense    Kind = "MANUAL_EXPENSE"
	KindCreditAdjustment Kind = "CREDIT_ADJUSTMENT"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsManual() bool {
	return k == KindManualIncome || k == KindManualExpense
}

type Method string

const (
	MethodNone     Method = ""
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodCard     Method = "card"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard:
		return true
	default:
		return false
	}
}

// Stage distinguishes the deposit from the final balance of a reservation payment.
type Stage string

const (
	StageNone    Stage = ""
	StageDeposit Stage = "DEPOSIT"
	StageBalance Stage = "BALANCE"
)
