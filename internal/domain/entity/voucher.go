package entity

import "time"

// VoucherStatus enumerates the stored states of a voucher.
//
// "expired" is deliberately absent: expiry is derived at query time
// from ExpiryDate and never written back, so a voucher record stays
// "active" on disk even after its date has passed.
type VoucherStatus string

const (
	VoucherActive    VoucherStatus = "active"
	VoucherUsed      VoucherStatus = "used"
	VoucherCancelled VoucherStatus = "cancelled"
)

// Voucher is a discount code issued to a customer.
// CustomerPhone is a weak reference by natural key, not by ID.
type Voucher struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	CustomerPhone string        `json:"customerPhone"`
	Discount      float64       `json:"discount"`
	Status        VoucherStatus `json:"status"`
	ExpiryDate    time.Time     `json:"expiryDate"`
	UsedAt        *time.Time    `json:"usedAt,omitempty"`
	CancelledAt   *time.Time    `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Identity returns the unique identifier of the voucher.
func (v *Voucher) Identity() string { return v.ID }

// SetIdentity assigns the store-generated identifier.
func (v *Voucher) SetIdentity(id string) { v.ID = id }

// ExpiredAt reports whether the voucher should be treated as expired
// at the given instant. Only active vouchers can expire; used and
// cancelled ones keep their terminal status.
func (v *Voucher) ExpiredAt(now time.Time) bool {
	return v.Status == VoucherActive && !v.ExpiryDate.IsZero() && v.ExpiryDate.Before(now)
}
