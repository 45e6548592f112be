package valueobject

import (
	"fmt"
	"regexp"
	"time"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cardCVVRe    = regexp.MustCompile(`^\d{3,4}$`)
)

// CreditCard is the payment instrument presented with a payment confirmation.
// The ledger never stores the full card; payments carry only Reference().
type CreditCard struct {
	number          string
	cvv             string
	holderFirstName string
	holderLastName  string
	provider        string
	validThru       time.Time
}

// NewCreditCard creates a CreditCard after validating number, cvv, holder and provider.
func NewCreditCard(number, cvv, holderFirstName, holderLastName, provider string, validThru time.Time) (CreditCard, error) {
	if !cardNumberRe.MatchString(number) {
		return CreditCard{}, fmt.Errorf("invalid card number: must be exactly 16 digits")
	}
	if !cardCVVRe.MatchString(cvv) {
		return CreditCard{}, fmt.Errorf("invalid cvv: must be 3 or 4 digits")
	}
	if holderFirstName == "" || holderLastName == "" {
		return CreditCard{}, fmt.Errorf("card holder name is required")
	}
	if provider == "" {
		return CreditCard{}, fmt.Errorf("card provider is required")
	}
	return CreditCard{
		number:          number,
		cvv:             cvv,
		holderFirstName: holderFirstName,
		holderLastName:  holderLastName,
		provider:        provider,
		validThru:       validThru,
	}, nil
}

// Reference returns the masked instrument reference recorded on the ledger,
// for example "MasterCard ****3456".
func (c CreditCard) Reference() string {
	return fmt.Sprintf("%s ****%s", c.provider, c.number[len(c.number)-4:])
}

// HolderName returns the card holder's full name.
func (c CreditCard) HolderName() string {
	return fmt.Sprintf("%s %s", c.holderFirstName, c.holderLastName)
}

// Provider returns the card scheme name.
func (c CreditCard) Provider() string { return c.provider }

// ValidThru returns the card expiry date.
func (c CreditCard) ValidThru() time.Time { return c.validThru }

// IsZero returns true if the card has not been initialised.
func (c CreditCard) IsZero() bool { return c.number == "" }
