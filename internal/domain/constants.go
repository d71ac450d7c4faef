package domain

const (
	RolePlayer = "PLAYER"
	RoleAdmin  = "ADMIN"
)

// Wallet transaction types. Amounts are stored as positive magnitudes;
// the type decides the sign applied to the balance.
const (
	TxDeposit    = "DEPOSIT"
	TxWithdrawal = "WITHDRAWAL"
	TxPrize      = "PRIZE"
	TxEntryFee   = "ENTRY_FEE"
	TxRefund     = "REFUND"
)

const (
	TxStatusPending   = "PENDING"
	TxStatusCompleted = "COMPLETED"
	TxStatusFailed    = "FAILED"
)

const (
	TournamentUpcoming  = "UPCOMING"
	TournamentLive      = "LIVE"
	TournamentCompleted = "COMPLETED"
	TournamentCancelled = "CANCELLED"
)

const (
	ModeSolo  = "SOLO"
	ModeDuo   = "DUO"
	ModeSquad = "SQUAD"
)

const (
	GamePUBG = "PUBG"
	GameBGMI = "BGMI"
)

const (
	MatchPending   = "PENDING"
	MatchOngoing   = "ONGOING"
	MatchCompleted = "COMPLETED"
)

const (
	KYCNotSubmitted = "NOT_SUBMITTED"
	KYCPending      = "PENDING"
	KYCVerified     = "VERIFIED"
	KYCRejected     = "REJECTED"
)

const (
	DocAadhaar    = "AADHAAR"
	DocPAN        = "PAN"
	DocPassport   = "PASSPORT"
	DocNationalID = "NATIONAL_ID"
)

const (
	NotifTournament = "TOURNAMENT"
	NotifWallet     = "WALLET"
	NotifKYC        = "KYC"
	NotifResult     = "RESULT"
	NotifRoom       = "ROOM"
)

// Supported wallet currencies
var Currencies = []string{"INR", "NGN", "USD"}

// TeamSize returns the number of players for a tournament mode.
func TeamSize(mode string) int {
	switch mode {
	case ModeDuo:
		return 2
	case ModeSquad:
		return 4
	default:
		return 1
	}
}

// TxSign returns +1 for credit types and -1 for debit types, 0 for unknown.
func TxSign(txType string) int64 {
	switch txType {
	case TxDeposit, TxPrize, TxRefund:
		return 1
	case TxWithdrawal, TxEntryFee:
		return -1
	}
	return 0
}

// IsValidCurrency reports whether code is a supported wallet currency.
func IsValidCurrency(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}
