package optrack

import (
	"fmt"
	"sort"
	"strings"
)

// Action is the broker transaction kind, one of the closed set of actions a
// Schwab-style export can contain.
type Action int

// The ordinal values are part of the natural key of stored transactions and
// must never be reordered.
const (
	BuyToOpen Action = iota
	BuyToClose
	SellToClose
	SellToOpen
	Buy
	Sell
	JournaledShares
	Journal
	NRATaxAdj
	CashDividend
	QualifiedDividend
	NonQualifiedDiv
	CreditInterest
	WireFunds
	MiscCashEntry
	ServiceFee
	MoneyLinkTransfer
	MoneyLinkDeposit
	MoneyLinkAdj
	StockPlanActivity
	ReinvestShares
	QualDivReinvest
	ReinvestDividend
	ForeignTaxPaid
	Expired
	MandatoryReorgExc
	SpinOff
	FundsReceived
	CashInLieu
	StockSplit
	CashStockMerger
)

// actionLabels maps the human-readable broker strings to actions.
var actionLabels = map[string]Action{
	"Buy to Open":         BuyToOpen,
	"Buy to Close":        BuyToClose,
	"Sell to Open":        SellToOpen,
	"Sell to Close":       SellToClose,
	"Buy":                 Buy,
	"Sell":                Sell,
	"Journaled Shares":    JournaledShares,
	"Journal":             Journal,
	"NRA Tax Adj":         NRATaxAdj,
	"Cash Dividend":       CashDividend,
	"Qualified Dividend":  QualifiedDividend,
	"Non-Qualified Div":   NonQualifiedDiv,
	"Credit Interest":     CreditInterest,
	"Wire Funds":          WireFunds,
	"Misc Cash Entry":     MiscCashEntry,
	"Service Fee":         ServiceFee,
	"MoneyLink Transfer":  MoneyLinkTransfer,
	"MoneyLink Deposit":   MoneyLinkDeposit,
	"MoneyLink Adj":       MoneyLinkAdj,
	"Stock Plan Activity": StockPlanActivity,
	"Reinvest Shares":     ReinvestShares,
	"Qual Div Reinvest":   QualDivReinvest,
	"Reinvest Dividend":   ReinvestDividend,
	"Foreign Tax Paid":    ForeignTaxPaid,
	"Expired":             Expired,
	"Mandatory Reorg Exc": MandatoryReorgExc,
	"Spin-off":            SpinOff,
	"Funds Received":      FundsReceived,
	"Cash In Lieu":        CashInLieu,
	"Stock Split":         StockSplit,
	"Cash/Stock Merger":   CashStockMerger,
}

// actionNames maps actions to the stable identifiers used in stored documents.
var actionNames = map[Action]string{
	BuyToOpen:         "BUY_TO_OPEN",
	BuyToClose:        "BUY_TO_CLOSE",
	SellToClose:       "SELL_TO_CLOSE",
	SellToOpen:        "SELL_TO_OPEN",
	Buy:               "BUY",
	Sell:              "SELL",
	JournaledShares:   "JOURNALED_SHARES",
	Journal:           "JOURNAL",
	NRATaxAdj:         "NRA_TAX_ADJ",
	CashDividend:      "CASH_DIVIDEND",
	QualifiedDividend: "QUALIFIED_DIVIDEND",
	NonQualifiedDiv:   "NON_QUALIFIED_DIV",
	CreditInterest:    "CREDIT_INTEREST",
	WireFunds:         "WIRE_FUNDS",
	MiscCashEntry:     "MISC_CASH_ENTRY",
	ServiceFee:        "SERVICE_FEE",
	MoneyLinkTransfer: "MONEYLINK_TRANSFER",
	MoneyLinkDeposit:  "MONEYLINK_DEPOSIT",
	MoneyLinkAdj:      "MONEYLINK_ADJ",
	StockPlanActivity: "STOCK_PLAN_ACTIVITY",
	ReinvestShares:    "REINVEST_SHARES",
	QualDivReinvest:   "QUAL_DIV_REINVEST",
	ReinvestDividend:  "REINVEST_DIVIDEND",
	ForeignTaxPaid:    "FOREIGN_TAX_PAID",
	Expired:           "EXPIRED",
	MandatoryReorgExc: "MANDATORY_REORG_EXC",
	SpinOff:           "SPIN_OFF",
	FundsReceived:     "FUNDS_RECEIVED",
	CashInLieu:        "CASH_IN_LIEU",
	StockSplit:        "STOCK_SPLIT",
	CashStockMerger:   "CASH_STOCK_MERGER",
}

// UnsupportedActionError reports a broker action string that is not part of
// the known action set. It is a row-level error: the row is dropped and the
// batch continues.
type UnsupportedActionError struct {
	Label string
}

func (e *UnsupportedActionError) Error() string {
	labels := make([]string, 0, len(actionLabels))
	for l := range actionLabels {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return fmt.Sprintf("unsupported action %q, supported one of [%s]", e.Label, strings.Join(labels, ", "))
}

// ParseAction resolves the broker's human-readable action string.
func ParseAction(label string) (Action, error) {
	a, ok := actionLabels[label]
	if !ok {
		return 0, &UnsupportedActionError{Label: label}
	}
	return a, nil
}

// ActionFromName resolves the stable identifier used in stored documents.
func ActionFromName(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action name %q", name)
}

// Name returns the stable identifier of the action, as stored in documents.
func (a Action) Name() string { return actionNames[a] }

// String returns the stable identifier of the action.
func (a Action) String() string { return a.Name() }

// Label returns the human-readable broker string for the action.
func (a Action) Label() string {
	for l, action := range actionLabels {
		if action == a {
			return l
		}
	}
	return ""
}

// IsOpen reports whether the action opens (or adds to) an option position.
func (a Action) IsOpen() bool { return a == BuyToOpen || a == SellToOpen }

// IsClose reports whether the action reduces an option position.
func (a Action) IsClose() bool { return a == BuyToClose || a == SellToClose }

// IsOption reports whether the action trades an option contract.
func (a Action) IsOption() bool { return a.IsOpen() || a.IsClose() }

// IsBuy reports whether the action adds contracts or shares.
func (a Action) IsBuy() bool { return a == BuyToOpen || a == BuyToClose || a == Buy }

// IsSell reports whether the action removes contracts or shares.
func (a Action) IsSell() bool { return a == SellToOpen || a == SellToClose || a == Sell }

// IsPositionRelevant reports whether the action participates in position
// reconstruction and is therefore worth persisting. Cash movements,
// dividends, fees and corporate actions are not.
func (a Action) IsPositionRelevant() bool {
	switch a {
	case BuyToOpen, BuyToClose, SellToOpen, SellToClose, Expired, Buy, Sell:
		return true
	}
	return false
}
