package reservation

type Status string

const (
	StatusNone           Status = "NONE"
	StatusDepositPending Status = "DEPOSIT_PENDING"
	StatusDepositPaid    Status = "DEPOSIT_PAID"
	StatusCancelled      Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusDepositPending, StatusDepositPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

type SlotStatus string

const (
	SlotAvailable SlotStatus = "AVAILABLE"
	SlotBooked    SlotStatus = "BOOKED"
)
